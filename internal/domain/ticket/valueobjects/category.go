package valueobjects

import "fmt"

type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryHVAC       Category = "hvac"
	CategoryAppliance  Category = "appliance"
	CategoryStructural Category = "structural"
	CategoryPest       Category = "pest"
	CategoryOther      Category = "other"
)

var validCategories = map[Category]bool{
	CategoryPlumbing:   true,
	CategoryElectrical: true,
	CategoryHVAC:       true,
	CategoryAppliance:  true,
	CategoryStructural: true,
	CategoryPest:       true,
	CategoryOther:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// CategoryValues lists all valid categories, used for binding validation.
func CategoryValues() []string {
	return []string{
		CategoryPlumbing.String(),
		CategoryElectrical.String(),
		CategoryHVAC.String(),
		CategoryAppliance.String(),
		CategoryStructural.String(),
		CategoryPest.String(),
		CategoryOther.String(),
	}
}
