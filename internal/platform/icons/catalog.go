package icons

// ID identifies one glyph in the catalog.
type ID string

const (
	IDDefault      ID = "default"
	IDDesign       ID = "design"
	IDDevelopment  ID = "development"
	IDSales        ID = "sales"
	IDMobile       ID = "mobile"
	IDConstruction ID = "construction"
	IDTechnology   ID = "technology"
	IDRealEstate   ID = "real estate"
	IDWriting      ID = "writing"

	IDLoading ID = "loading"
	IDBrowse  ID = "browse"
	IDSearch  ID = "search"
)
