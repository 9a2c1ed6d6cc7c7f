package domain

// Identification is the distilled result of a plant-identification call.
// ConfidencePercent is a two-decimal string (e.g. "93.52") because the
// mobile client renders it verbatim.
type Identification struct {
	ScientificName    string `json:"scientific_name"`
	ConfidencePercent string `json:"confidence_percent"`
	Invasive          bool   `json:"invasive"`
}
