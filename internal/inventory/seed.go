package inventory

// SeedDefault populates the store's electronics catalog.
func SeedDefault() *Inventory {
	inv := New()
	seedLaptops(inv)
	seedSmartphones(inv)
	seedSmartwatches(inv)
	seedCameras(inv)
	return inv
}

func seedLaptops(inv *Inventory) {
	colors := []string{"Black", "Silver", "White"}
	storage := []string{"256GB SSD", "512GB SSD", "1TB SSD"}

	thinkpad := NewProduct("Lenovo Thinkpad", "001", 999.99, 20, "Laptops")
	thinkpad.AddOption("Color", colors)
	thinkpad.AddOption("Storage", storage)

	surface := NewProduct("Surface Pro", "005", 1999.99, 22, "Laptops")
	surface.AddOption("Color", colors)
	surface.AddOption("Storage", storage)

	macbook := NewProduct("Macbook Pro", "006", 2999.99, 22, "Laptops")
	macbook.AddOption("Color", []string{"Silver", "White"})
	macbook.AddOption("Storage", storage)

	macbookAir := NewProduct("Macbook Air", "007", 5999.99, 22, "Laptops")
	macbookAir.AddOption("Color", []string{"Black", "Silver"})
	macbookAir.AddOption("Storage", storage)

	chromebook := NewProduct("Chromebook", "107", 99.99, 22, "Laptops")
	chromebook.AddOption("Color", []string{"Black"})
	chromebook.AddOption("Storage", storage)

	inv.Add(thinkpad, surface, macbook, macbookAir, chromebook)
}

func seedSmartphones(inv *Inventory) {
	colors := []string{"Black", "Blue", "Red"}
	storage := []string{"64GB", "128GB", "256GB"}

	iphone15 := NewProduct("iPhone 15", "002", 499.99, 12, "Smartphones")
	iphone15.AddOption("Color", colors)
	iphone15.AddOption("Storage", storage)

	iphone15pro := NewProduct("iPhone 15 Pro", "008", 899.99, 12, "Smartphones")
	iphone15pro.AddOption("Color", colors)
	iphone15pro.AddOption("Storage", storage)

	galaxy := NewProduct("Samsung Galaxy", "009", 529.99, 12, "Smartphones")
	galaxy.AddOption("Color", colors)
	galaxy.AddOption("Storage", storage)

	pixel := NewProduct("Google Pixel", "019", 199.99, 12, "Smartphones")
	pixel.AddOption("Color", colors)
	pixel.AddOption("Storage", storage)

	razer := NewProduct("Motorolla Razer", "119", 199.99, 12, "Smartphones")
	razer.AddOption("Color", []string{"Black", "Silver", "White"})
	razer.AddOption("Storage", storage)

	inv.Add(iphone15, iphone15pro, galaxy, pixel, razer)
}

func seedSmartwatches(inv *Inventory) {
	colors := []string{"Black", "Blue", "Red"}
	sizes := []string{"35mm", "40mm", "45mm"}

	appleWatch := NewProduct("Apple Watch", "003", 249.99, 6, "Smartwatches")
	appleWatch.AddOption("Color", colors)
	appleWatch.AddOption("Size", sizes[:2])

	appleWatchPro := NewProduct("Apple Watch Pro", "103", 449.99, 6, "Smartwatches")
	appleWatchPro.AddOption("Color", colors)
	appleWatchPro.AddOption("Size", sizes[:2])

	galaxyWatch := NewProduct("Galaxy Watch", "010", 249.99, 6, "Smartwatches")
	galaxyWatch.AddOption("Color", colors)
	galaxyWatch.AddOption("Size", sizes)

	samsungWatch := NewProduct("Samsung Watch", "110", 249.99, 6, "Smartwatches")
	samsungWatch.AddOption("Color", colors)
	samsungWatch.AddOption("Size", sizes)

	fitbit := NewProduct("Fitbit", "011", 249.99, 6, "Smartwatches")
	fitbit.AddOption("Color", colors)
	fitbit.AddOption("Size", sizes)

	inv.Add(appleWatch, appleWatchPro, galaxyWatch, samsungWatch, fitbit)
}

func seedCameras(inv *Inventory) {
	storage := []string{"64GB", "128GB", "256GB"}

	nikon := NewProduct("Nikon Coolpix", "004", 449.99, 25, "Cameras")
	nikon.AddOption("Color", []string{"Black", "Silver"})
	nikon.AddOption("Storage", storage)

	dslr := NewProduct("Canon DSLR", "014", 449.99, 25, "Cameras")
	dslr.AddOption("Color", []string{"Black", "Gray"})
	dslr.AddOption("Storage", storage)

	huji := NewProduct("HujiFilm Disposable", "015", 10.99, 25, "Cameras")
	dispo := NewProduct("Disposable Camera", "016", 5.99, 25, "Cameras")
	film := NewProduct("Film", "017", 2.99, 25, "Cameras")

	inv.Add(nikon, dslr, huji, dispo, film)
}
