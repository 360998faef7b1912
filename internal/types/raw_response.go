package types

// Origin tags where a raw model response came from and therefore which parsing
// path it takes.
type Origin string

// Origin constants for RawResponse.
const (
	// OriginStructured marks text expected to parse as a JSON object.
	OriginStructured Origin = "structured-candidate"
	// OriginProse marks free-form prose or markup describing a resume.
	OriginProse Origin = "prose"
)

// RawResponse is the opaque text produced by a generative-model call. It is
// created once per generation request and discarded after parsing.
type RawResponse struct {
	Text   string `json:"text"`
	Origin Origin `json:"origin"`
}
