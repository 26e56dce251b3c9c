package entity

type SweepReport struct {
	Scanned int `json:"scanned"`
	Orphans int `json:"orphans"`
	Removed int `json:"removed"`
	Failed  int `json:"failed"`
}
