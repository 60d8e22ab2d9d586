// Package nutrient extracts nutrition-fact mentions and numeric nutrient
// values from OCR text of food label images. The mention dictionary below is
// the knowledge base: per nutrient, the regex fragments recognizing how that
// nutrient is written on labels across languages.
package nutrient

// Kind identifies a nutrient recognized by the extractor.
type Kind string

const (
	Energy       Kind = "energy"
	SaturatedFat Kind = "saturated_fat"
	TransFat     Kind = "trans_fat"
	Fat          Kind = "fat"
	Sugar        Kind = "sugar"
	Carbohydrate Kind = "carbohydrate"
	Protein      Kind = "protein"
	Salt         Kind = "salt"
	Fiber        Kind = "fiber"
	// NutritionValues marks a nutrition-table heading. It has no measurable
	// quantity, so it appears in the dictionary but not in the unit catalog.
	NutritionValues Kind = "nutrition_values"
)

// Kinds lists every nutrient kind in dictionary order. Extraction iterates
// kinds in exactly this order so results are deterministic.
var Kinds = []Kind{
	Energy,
	SaturatedFat,
	TransFat,
	Fat,
	Sugar,
	Carbohydrate,
	Protein,
	Salt,
	Fiber,
	NutritionValues,
}

// Mention is one way a nutrient is written on a label. Fragment is regular
// expression syntax: optional plurals (s?), accent variants ([ée]) and the
// like are encoded directly by the dictionary author. Fragments are trusted
// configuration, never runtime input. Languages is metadata only; matching
// never filters by language, all fragments of a kind are unioned.
type Mention struct {
	Fragment  string
	Languages []string
}

var mentionDictionary = map[Kind][]Mention{
	Energy: {
		{"[ée]nergie", []string{"fr", "de"}},
		{"valeurs? [ée]nerg[ée]tiques?", []string{"fr"}},
		{"energy", []string{"en"}},
		{"calories", []string{"fr", "en"}},
		{"energia", []string{"es"}},
		{"valor energ[ée]tico", []string{"es"}},
	},
	SaturatedFat: {
		{"mati[èe]res? grasses? satur[ée]s?", []string{"fr"}},
		{"acides? gras satur[ée]s?", []string{"fr"}},
		{"dont satur[ée]s?", []string{"fr"}},
		{"saturated fat", []string{"en"}},
		{"of which saturates", []string{"en"}},
		{"verzadigde vetzuren", []string{"nl"}},
		{"waarvan verzadigde", []string{"nl"}},
		{"gesättigte fettsäuren", []string{"de"}},
		{"[aá]cidos grasos saturados", []string{"es"}},
	},
	TransFat: {
		{"mati[èe]res? grasses? trans", []string{"fr"}},
		{"trans fat", []string{"en"}},
	},
	Fat: {
		{"mati[èe]res? grasses?", []string{"fr"}},
		{"graisses?", []string{"fr"}},
		{"lipides?", []string{"fr"}},
		{"total fat", []string{"en"}},
		{"vetten", []string{"nl"}},
		{"fett", []string{"de"}},
		{"grasas", []string{"es"}},
		{"l[íi]pidos", []string{"es"}},
	},
	Sugar: {
		{"sucres?", []string{"fr"}},
		{"sugars?", []string{"en"}},
		{"suikers?", []string{"nl"}},
		{"zucker", []string{"de"}},
		{"az[úu]cares", []string{"es"}},
	},
	Carbohydrate: {
		{"total carbohydrate", []string{"en"}},
		{"glucids?", []string{"fr"}},
		{"glucides?", []string{"en"}},
		{"koolhydraten", []string{"nl"}},
		{"koolhydraat", []string{"nl"}},
		{"kohlenhydrate", []string{"de"}},
		{"hidratos de carbono", []string{"es"}},
	},
	Protein: {
		{"prot[ée]ines?", []string{"fr"}},
		{"protein", []string{"en"}},
		{"eiwitten", []string{"nl"}},
		{"eiweiß", []string{"de"}},
		{"prote[íi]nas", []string{"es"}},
	},
	Salt: {
		{"sel", []string{"fr"}},
		{"salt", []string{"en"}},
		{"zout", []string{"nl"}},
		{"salz", []string{"de"}},
		{"sal", []string{"es"}},
	},
	Fiber: {
		{"fibres?", []string{"en", "fr"}},
		{"fibers?", []string{"en"}},
		{"fibres? alimentaires?", []string{"fr"}},
		{"(?:voedings)?vezels?", []string{"nl"}},
		{"ballaststoffe", []string{"de"}},
		{"fibra(?: alimentaria)?", []string{"es"}},
	},
	NutritionValues: {
		{"informations? nutritionnelles?(?: moyennes?)?", []string{"fr"}},
		{"valeurs? nutritionnelles?(?: moyennes?)?", []string{"fr"}},
		{"analyse moyenne pour", []string{"fr"}},
		{"valeurs? nutritives?", []string{"fr"}},
		{"valeurs? moyennes?", []string{"fr"}},
		{"nutrition facts?", []string{"en"}},
		{"gemiddelde waarden per", []string{"nl"}},
	},
}

// unitCatalog maps each measurable kind to the unit tokens accepted next to
// its value. Every kind listed here must have mention patterns above; the
// Extractor constructor enforces that at startup.
var unitCatalog = map[Kind][]string{
	Energy:       {"kj", "kcal"},
	SaturatedFat: {"g"},
	TransFat:     {"g"},
	Fat:          {"g"},
	Sugar:        {"g"},
	Carbohydrate: {"g"},
	Protein:      {"g"},
	Salt:         {"g"},
	Fiber:        {"g"},
}

// Patterns returns the kind's mention fragments in dictionary order.
// ok is false for kinds outside the enumeration.
func Patterns(kind Kind) (mentions []Mention, ok bool) {
	mentions, ok = mentionDictionary[kind]
	return mentions, ok
}

// Units returns the unit tokens valid for the kind's numeric value.
// ok is false for kinds with no measurable quantity.
func Units(kind Kind) (units []string, ok bool) {
	units, ok = unitCatalog[kind]
	return units, ok
}
