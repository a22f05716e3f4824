package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, CodeUnknown, "Ocorreu um erro inesperado.")
	message.SetString(lang, CodeNotFound, "O recurso solicitado não foi encontrado.")
	message.SetString(lang, CodeNPCNotFound, `O NPC "{{.Key}}" não existe.`)
	message.SetString(lang, CodeMoveNotFound, `O golpe "{{.Key}}" não existe.`)
	message.SetString(lang, CodeInvalidArgument, "A requisição é inválida.")
	message.SetString(lang, CodeFilterInvalid, "A expressão de filtro é inválida.")
	message.SetString(lang, CodeSeedOutOfRange, "A semente está fora do intervalo.")
	message.SetString(lang, CodeCatalogInvalid, "O catálogo de batalha é inválido.")
	message.SetString(lang, CodeNarrationUnavailable, "A narração não está disponível agora.")
	message.SetString(lang, CodeNarrationFailed, "A narração falhou.")
}
