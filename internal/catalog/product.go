package catalog

import "fmt"

// Category is one of the fixed top-level product groupings of the marketplace.
type Category string

const (
	CategoryCrops       Category = "crops"
	CategoryLivestock   Category = "livestock"
	CategoryPoultry     Category = "poultry"
	CategoryFisheries   Category = "fisheries"
	CategorySeeds       Category = "seeds"
	CategoryFertilizers Category = "fertilizers"
	CategoryEquipment   Category = "equipment"
)

// Categories returns all categories in their fixed declaration order.
func Categories() []Category {
	return []Category{
		CategoryCrops,
		CategoryLivestock,
		CategoryPoultry,
		CategoryFisheries,
		CategorySeeds,
		CategoryFertilizers,
		CategoryEquipment,
	}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Unit is the unit of sale for a product.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitHead  Unit = "head"
	UnitBird  Unit = "bird"
	UnitBag   Unit = "bag"
	UnitPiece Unit = "unit"
	UnitLiter Unit = "liter"
	UnitSet   Unit = "set"
	UnitPack  Unit = "pack"
	UnitTon   Unit = "ton"
)

// Units returns all units of sale in their fixed declaration order.
func Units() []Unit {
	return []Unit{UnitKg, UnitHead, UnitBird, UnitBag, UnitPiece, UnitLiter, UnitSet, UnitPack, UnitTon}
}

// ParseUnit validates a raw unit string.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units() {
		if s == string(u) {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit: %q", s)
}

// Product is a single marketplace listing. Products are loaded once at
// startup and never mutated during a session; prices are whole TZS.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	Price       int64    `json:"price"`
	Unit        Unit     `json:"unit"`
	Location    string   `json:"location"`
	Seller      string   `json:"seller"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
}
