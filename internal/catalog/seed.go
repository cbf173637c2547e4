package catalog

// Seed returns the built-in product set used when no external catalog
// source is configured.
func Seed() []Product {
	return []Product{
		// Crops
		{ID: "c1", Name: "Maize", Category: CategoryCrops, Subcategory: "maize", Price: 1200, Unit: UnitKg, Location: "Morogoro", Seller: "Kilimo Cooperative", ImageURL: "https://images.unsplash.com/photo-1601371535879-85c961ba118b?auto=format&fit=crop&w=800&q=60", Description: "High-quality maize grains suitable for human consumption or animal feed."},
		{ID: "c2", Name: "Rice", Category: CategoryCrops, Subcategory: "rice", Price: 2500, Unit: UnitKg, Location: "Mbeya", Seller: "Mbeya Rice Farmers", ImageURL: "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?auto=format&fit=crop&w=800&q=60", Description: "Premium rice grown in the fertile lands of Mbeya region."},
		{ID: "c3", Name: "Cassava", Category: CategoryCrops, Subcategory: "cassava", Price: 800, Unit: UnitKg, Location: "Dar es Salaam", Seller: "Coastal Farmers Group", ImageURL: "https://images.unsplash.com/photo-1494059980473-813e73ee784b?auto=format&fit=crop&w=800&q=60", Description: "Fresh cassava roots harvested from coastal regions of Tanzania."},

		// Livestock
		{ID: "l1", Name: "Dairy Cattle", Category: CategoryLivestock, Subcategory: "cattle", Price: 750000, Unit: UnitHead, Location: "Arusha", Seller: "Arusha Livestock Center", ImageURL: "https://images.unsplash.com/photo-1570867249293-2b1cf15abb76?auto=format&fit=crop&w=800&q=60", Description: "Healthy dairy cattle with good milk production records."},
		{ID: "l2", Name: "Sheep", Category: CategoryLivestock, Subcategory: "sheep", Price: 150000, Unit: UnitHead, Location: "Dodoma", Seller: "Central Tanzania Livestock Market", ImageURL: "https://images.unsplash.com/photo-1551273255-2b22cf00419e?auto=format&fit=crop&w=800&q=60", Description: "Healthy sheep for meat production, well-adapted to local climate."},
		{ID: "l3", Name: "Goat", Category: CategoryLivestock, Subcategory: "goat", Price: 120000, Unit: UnitHead, Location: "Mwanza", Seller: "Lake Zone Livestock Traders", ImageURL: "https://images.unsplash.com/photo-1560963696-a6eaaf279026?auto=format&fit=crop&w=800&q=60", Description: "Healthy local breed goats for meat production."},

		// Poultry
		{ID: "p1", Name: "Layer Chickens", Category: CategoryPoultry, Subcategory: "chickens", Price: 15000, Unit: UnitBird, Location: "Dar es Salaam", Seller: "Modern Poultry Farm", ImageURL: "https://images.unsplash.com/photo-1548550023-2bdb3c5beed7?auto=format&fit=crop&w=800&q=60", Description: "Productive layer chickens at peak egg production age."},
		{ID: "p2", Name: "Ducks", Category: CategoryPoultry, Subcategory: "ducks", Price: 12000, Unit: UnitBird, Location: "Morogoro", Seller: "Wetlands Poultry Farm", ImageURL: "https://images.unsplash.com/photo-1620573083867-73755a2f8a68?auto=format&fit=crop&w=800&q=60", Description: "Healthy ducks for meat and egg production."},
		{ID: "p3", Name: "Turkeys", Category: CategoryPoultry, Subcategory: "turkeys", Price: 35000, Unit: UnitBird, Location: "Arusha", Seller: "Highland Poultry Center", ImageURL: "https://images.unsplash.com/photo-1511994475232-78cadac0bc13?auto=format&fit=crop&w=800&q=60", Description: "Mature turkeys ready for market, raised on natural feed."},

		// Fisheries
		{ID: "f1", Name: "Fresh Tilapia", Category: CategoryFisheries, Subcategory: "tilapia", Price: 8000, Unit: UnitKg, Location: "Mwanza", Seller: "Lake Victoria Fisheries", ImageURL: "https://images.unsplash.com/photo-1615141982883-c7ad0e69fd62?auto=format&fit=crop&w=800&q=60", Description: "Fresh tilapia from Lake Victoria, sustainably harvested."},
		{ID: "f2", Name: "Catfish", Category: CategoryFisheries, Subcategory: "catfish", Price: 7500, Unit: UnitKg, Location: "Dar es Salaam", Seller: "Coastal Aquaculture", ImageURL: "https://images.unsplash.com/photo-1584268297807-5cf96692acbd?auto=format&fit=crop&w=800&q=60", Description: "Farm-raised catfish, fresh and ready for market."},
		{ID: "f3", Name: "Nile Perch", Category: CategoryFisheries, Subcategory: "nile_perch", Price: 10000, Unit: UnitKg, Location: "Mwanza", Seller: "Lake Zone Fish Suppliers", ImageURL: "https://images.unsplash.com/photo-1534177616072-ef7dc120449d?auto=format&fit=crop&w=800&q=60", Description: "Premium Nile perch from Lake Victoria, cleaned and ready for cooking."},

		// Seeds
		{ID: "s1", Name: "Hybrid Maize Seeds", Category: CategorySeeds, Subcategory: "maize_seeds", Price: 12000, Unit: UnitKg, Location: "Dodoma", Seller: "Agricultural Input Supplier", ImageURL: "https://images.unsplash.com/photo-1619840860293-ea11f4776510?auto=format&fit=crop&w=800&q=60", Description: "High-yielding hybrid maize seeds suitable for various regions in Tanzania."},
		{ID: "s2", Name: "Rice Seeds", Category: CategorySeeds, Subcategory: "rice_seeds", Price: 15000, Unit: UnitKg, Location: "Morogoro", Seller: "Rice Research Center", ImageURL: "https://images.unsplash.com/photo-1586201375761-83865001e8c7?auto=format&fit=crop&w=800&q=60", Description: "Quality rice seeds of improved varieties with higher yield potential."},
		{ID: "s3", Name: "Vegetable Seeds Pack", Category: CategorySeeds, Subcategory: "vegetable_seeds", Price: 8000, Unit: UnitPack, Location: "Arusha", Seller: "Highland Seed Company", ImageURL: "https://images.unsplash.com/photo-1571016257414-e5d4a3dc3ced?auto=format&fit=crop&w=800&q=60", Description: "Assorted vegetable seeds including tomato, cabbage, onion, and carrot."},

		// Fertilizers
		{ID: "ft1", Name: "NPK Fertilizer", Category: CategoryFertilizers, Subcategory: "npk", Price: 75000, Unit: UnitBag, Location: "Arusha", Seller: "Agro Input Center", ImageURL: "https://images.unsplash.com/photo-1558532965-034ba1ae6e75?auto=format&fit=crop&w=800&q=60", Description: "Balanced NPK fertilizer for improved crop yield and quality."},
		{ID: "ft2", Name: "Organic Fertilizer", Category: CategoryFertilizers, Subcategory: "organic", Price: 40000, Unit: UnitBag, Location: "Morogoro", Seller: "Sustainable Farming Inputs", ImageURL: "https://images.unsplash.com/photo-1603178455924-ef33372953bb?auto=format&fit=crop&w=800&q=60", Description: "100% natural organic fertilizer that improves soil health and crop quality."},
		{ID: "ft3", Name: "Liquid Fertilizer", Category: CategoryFertilizers, Subcategory: "liquid", Price: 25000, Unit: UnitLiter, Location: "Dar es Salaam", Seller: "Modern Agro Solutions", ImageURL: "https://images.unsplash.com/photo-1585567614453-13e540c954d9?auto=format&fit=crop&w=800&q=60", Description: "Fast-acting liquid fertilizer for foliar application."},

		// Equipment
		{ID: "e1", Name: "Hand Tractor", Category: CategoryEquipment, Subcategory: "tractors", Price: 5000000, Unit: UnitPiece, Location: "Dar es Salaam", Seller: "Farm Machinery Ltd", ImageURL: "https://images.unsplash.com/photo-1632993947473-f2d63cc9f397?auto=format&fit=crop&w=800&q=60", Description: "Compact hand tractor suitable for small to medium-sized farms."},
		{ID: "e2", Name: "Drip Irrigation System", Category: CategoryEquipment, Subcategory: "irrigation", Price: 350000, Unit: UnitSet, Location: "Arusha", Seller: "Water Management Solutions", ImageURL: "https://images.unsplash.com/photo-1563514227147-6d2e624f82b8?auto=format&fit=crop&w=800&q=60", Description: "Water-efficient drip irrigation system for 1 acre of land."},
		{ID: "e3", Name: "Farm Tool Set", Category: CategoryEquipment, Subcategory: "hand_tools", Price: 85000, Unit: UnitSet, Location: "Mbeya", Seller: "Farming Essentials", ImageURL: "https://images.unsplash.com/photo-1563489992-d10931a69a9b?auto=format&fit=crop&w=800&q=60", Description: "Complete set of essential hand tools for small-scale farming."},
	}
}
