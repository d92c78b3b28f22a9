package entity

// PrescriptionFilter is a domain-level filter for querying prescriptions.
// Used by the repository layer so the query is built from typed fields
// instead of concatenated SQL.
type PrescriptionFilter struct {
	Status PrescriptionStatus // zero value means no status filtering
}
