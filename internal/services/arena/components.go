package arena

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// DashboardView is the data behind the battle form.
type DashboardView struct {
	NPCs     []catalog.NPCTemplate
	NPCA     string
	NPCB     string
	Level    int
	Seed     string
	MaxTurns int
}

// BattleView is the data behind a rendered battle report.
type BattleView struct {
	Form   DashboardView
	Result *battle.Result
	Error  string
}

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:48rem;padding:0 1rem}
form{display:grid;grid-template-columns:repeat(auto-fit,minmax(10rem,1fr));gap:.75rem;align-items:end}
label{display:flex;flex-direction:column;font-size:.875rem;gap:.25rem}
ol.log{font-family:ui-monospace,monospace;font-size:.875rem;line-height:1.5}
.error{background:#fdecea;border:1px solid #f5c2c0;padding:.75rem}
.winner{font-size:1.25rem}`

// Page wraps body in the shared document layout.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><style>%s</style></head><body><header><h1><a href="/dashboard">NPC Arena</a></h1></header><main>`,
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// BattleForm renders the NPC pickers and battle options.
func BattleForm(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		sw.write(`<form method="get" action="/dashboard/battle">`)
		npcSelect(sw, "npc_a", "NPC A", view.NPCs, view.NPCA)
		npcSelect(sw, "npc_b", "NPC B", view.NPCs, view.NPCB)
		numberInput(sw, "level", "Level", strconv.Itoa(view.Level), 1)
		numberInput(sw, "max_turns", "Max turns", strconv.Itoa(view.MaxTurns), 0)
		sw.write(`<label>Seed<input type="text" name="seed" inputmode="numeric" placeholder="random" value="`)
		sw.write(templ.EscapeString(view.Seed))
		sw.write(`"></label><button type="submit">Fight</button></form>`)
		return sw.err
	})
}

// BattleReport renders a finished battle or the error that prevented it.
func BattleReport(view BattleView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := BattleForm(view.Form).Render(ctx, w); err != nil {
			return err
		}
		sw := &stickyWriter{w: w}
		if view.Error != "" {
			sw.write(`<section class="error" role="alert">`)
			sw.write(templ.EscapeString(view.Error))
			sw.write(`</section>`)
			return sw.err
		}
		if view.Result == nil {
			return nil
		}
		result := view.Result
		sw.write(`<section><p class="winner">Winner: <strong>`)
		sw.write(templ.EscapeString(result.Winner))
		sw.write(`</strong></p><p>`)
		sw.write(fmt.Sprintf("%d turn(s), seed <code>%d</code> (%s)", result.Turns, result.Seed, templ.EscapeString(string(result.SeedSource))))
		sw.write(`</p><table><thead><tr><th>NPC</th><th>Level</th><th>HP</th><th>Status</th></tr></thead><tbody>`)
		for _, snapshot := range result.Combatants {
			sw.write(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%d / %d</td><td>%s</td></tr>",
				templ.EscapeString(snapshot.Name), snapshot.Level, snapshot.HP, snapshot.MaxHP, templ.EscapeString(string(snapshot.Status))))
		}
		sw.write(`</tbody></table><ol class="log">`)
		for _, line := range result.Log {
			sw.write(`<li>`)
			sw.write(templ.EscapeString(line))
			sw.write(`</li>`)
		}
		sw.write(`</ol></section>`)
		return sw.err
	})
}

func npcSelect(sw *stickyWriter, name, label string, npcs []catalog.NPCTemplate, selected string) {
	sw.write(fmt.Sprintf(`<label>%s<select name="%s" required>`, templ.EscapeString(label), name))
	for _, npc := range npcs {
		attr := ""
		if npc.Key == selected {
			attr = " selected"
		}
		sw.write(fmt.Sprintf(`<option value="%s"%s>%s</option>`, templ.EscapeString(npc.Key), attr, templ.EscapeString(npc.Name)))
	}
	sw.write(`</select></label>`)
}

func numberInput(sw *stickyWriter, name, label, value string, minValue int) {
	sw.write(fmt.Sprintf(`<label>%s<input type="number" name="%s" min="%d" value="%s"></label>`,
		templ.EscapeString(label), name, minValue, templ.EscapeString(value)))
}

// stickyWriter keeps the first write error so components can emit markup
// without checking every call.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}
