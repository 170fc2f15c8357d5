package catalog

// ModelVersions records which revision of each heuristic produced a result,
// so downstream consumers can tell recalibrated outputs apart from old ones.
type ModelVersions struct {
	PracticeWeightVersion string `json:"practice_weight_version"`
	ReadinessBandVersion  string `json:"readiness_band_version"`
	ROICoefficientVersion string `json:"roi_coefficients_version"`
	CatalogVersion        string `json:"catalog_version"`
}

// Versions returns the model version tags for results computed against this
// catalog. The coefficient versions are fixed until the weights are
// calibrated against real outcomes.
func (c *Catalog) Versions() ModelVersions {
	return ModelVersions{
		PracticeWeightVersion: "1.0",
		ReadinessBandVersion:  "1.0",
		ROICoefficientVersion: "1.0",
		CatalogVersion:        c.Version,
	}
}
