package lead

// SubmitLeadRequest is the raw form payload. Every field is optional at the
// wire level; the validator treats a missing field as empty text.
type SubmitLeadRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Needs    string `json:"needs"`
	Timeline string `json:"timeline"`
	// Website is a honeypot: the real form hides it, so any value means a bot.
	Website string `json:"website"`
}
