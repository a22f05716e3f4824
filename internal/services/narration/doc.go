// Package narration turns battle logs into prose with an OpenAI-compatible
// chat completion API, Groq by default.
//
// Narration is an add-on: it reads a finished log and never feeds back into
// a simulation.
package narration
