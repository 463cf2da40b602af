package models

// SubjectCategory groups subjects by where they are studied
type SubjectCategory string

const (
	// SubjectCategoryFaculdade is a university subject
	SubjectCategoryFaculdade SubjectCategory = "faculdade"

	// SubjectCategoryEscola is a school subject
	SubjectCategoryEscola SubjectCategory = "escola"

	// SubjectCategoryOutros is anything else, and the fallback for unknown values
	SubjectCategoryOutros SubjectCategory = "outros"
)

// SubjectCategories lists the valid categories in display order
var SubjectCategories = []SubjectCategory{
	SubjectCategoryFaculdade,
	SubjectCategoryEscola,
	SubjectCategoryOutros,
}

// IsValid reports whether the category is one of the known values
func (c SubjectCategory) IsValid() bool {
	switch c {
	case SubjectCategoryFaculdade, SubjectCategoryEscola, SubjectCategoryOutros:
		return true
	}
	return false
}

// Subject is something the user studies
type Subject struct {
	// ID is the unique identifier for the subject
	ID string

	// Name is the display name
	Name string

	// Category is where the subject is studied
	Category SubjectCategory

	// TotalMinutes is the cumulative minutes credited by focus sessions
	TotalMinutes int
}
