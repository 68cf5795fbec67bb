package icons

import "strings"

// categoryRule maps any of its keywords to an icon id.
type categoryRule struct {
	keywords []string
	id       ID
}

// categoryRules is evaluated in order; the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{keywords: []string{"design"}, id: IDDesign},
	{keywords: []string{"develop"}, id: IDDevelopment},
	{keywords: []string{"sales"}, id: IDSales},
	{keywords: []string{"mobile"}, id: IDMobile},
	{keywords: []string{"construct"}, id: IDConstruction},
	{keywords: []string{"tech", "it"}, id: IDTechnology},
	{keywords: []string{"real estate", "property"}, id: IDRealEstate},
	{keywords: []string{"write", "content"}, id: IDWriting},
}

// ForCategory resolves the icon for a category name by case-insensitive
// substring match. Names matching no rule get IDDefault.
func ForCategory(name string) ID {
	lowered := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.id
			}
		}
	}
	return IDDefault
}
