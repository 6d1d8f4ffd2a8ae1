package domain

// ManufacturerCOE maps a manufacturer short code to the thermal
// compatibility classes (COE) it produces. A manufacturer may produce more
// than one class. The table is read-only; callers needing a different
// product domain pass their own table to SortCatalogWithCOE.
var ManufacturerCOE = map[string][]int{
	"BB":  {33},       // Boro Batch
	"BE":  {90},       // Bullseye
	"CHB": {33},       // Chinese boro
	"CIM": {104},      // Creation is Messy
	"DH":  {33},       // Double Helix
	"DS":  {90},       // Delphi Superior
	"EF":  {104},      // Effetre
	"GA":  {33},       // Glass Alchemy
	"GAF": {96},       // Gaffer
	"GRE": {33},       // Greasy Glass
	"LUN": {33},       // Lunar
	"MA":  {33},       // Molten Aura
	"MOM": {33},       // Momka
	"OC":  {96},       // Oceanside
	"OR":  {33},       // Origin
	"PAR": {33},       // Parramore
	"PDX": {33},       // PDX Tubing
	"TAG": {33, 104},  // Trautman Art Glass
	"UST": {33},       // UST Glass
	"VET": {104},      // Vetrofond
	"WM":  {96},       // Wissmach
	"Y96": {96},       // Youghiogheny 96
}

// MinCOE returns the lowest compatibility class listed for the manufacturer
// code. ok is false for unknown codes, which sort after all known ones.
func MinCOE(table map[string][]int, code string) (int, bool) {
	classes, ok := table[code]
	if !ok || len(classes) == 0 {
		return 0, false
	}
	lowest := classes[0]
	for _, c := range classes[1:] {
		if c < lowest {
			lowest = c
		}
	}
	return lowest, true
}
