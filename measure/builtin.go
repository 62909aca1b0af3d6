package measure

import "github.com/c360studio/quantify/quantity"

// builtinMeasurements is the curated table of everyday reference
// measurements the store starts with.
var builtinMeasurements = map[string]quantity.Quantity{
	// Volume
	"teaspoon":      quantity.MustNew(5.0, "milliliter"),
	"tablespoon":    quantity.MustNew(15.0, "milliliter"),
	"cup":           quantity.MustNew(250.0, "milliliter"),
	"glass":         quantity.MustNew(200.0, "milliliter"),
	"bottle":        quantity.MustNew(500.0, "milliliter"),
	"can":           quantity.MustNew(330.0, "milliliter"),
	"jug":           quantity.MustNew(1.0, "liter"),
	"bucket":        quantity.MustNew(10.0, "liter"),
	"bathtub":       quantity.MustNew(150.0, "liter"),
	"normal bath":   quantity.MustNew(150.0, "liter"),
	"swimming pool": quantity.MustNew(50000.0, "liter"),
	"ocean":         quantity.MustNew(1.332e21, "liter"),

	// Mass
	"grain of salt":  quantity.MustNew(0.06, "milligram"),
	"paperclip":      quantity.MustNew(1.0, "gram"),
	"apple":          quantity.MustNew(150.0, "gram"),
	"loaf of bread":  quantity.MustNew(500.0, "gram"),
	"bag of sugar":   quantity.MustNew(1.0, "kilogram"),
	"average person": quantity.MustNew(70.0, "kilogram"),
	"car mass":       quantity.MustNew(1500.0, "kilogram"),
	"elephant":       quantity.MustNew(5000.0, "kilogram"),
	"blue whale":     quantity.MustNew(150000.0, "kilogram"),

	// Length
	"grain of sand":         quantity.MustNew(0.5, "millimeter"),
	"credit card":           quantity.MustNew(85.6, "millimeter"),
	"smartphone":            quantity.MustNew(150.0, "millimeter"),
	"pizza":                 quantity.MustNew(30.0, "centimeter"),
	"door":                  quantity.MustNew(2.0, "meter"),
	"room":                  quantity.MustNew(5.0, "meter"),
	"football field length": quantity.MustNew(100.0, "meter"),
	"marathon":              quantity.MustNew(42.195, "kilometer"),
	"mount everest":         quantity.MustNew(8848.0, "meter"),

	// Time
	"blink":  quantity.MustNew(0.3, "second"),
	"breath": quantity.MustNew(4.0, "second"),
	"minute": quantity.MustNew(60.0, "second"),
	"hour":   quantity.MustNew(3600.0, "second"),
	"day":    quantity.MustNew(86400.0, "second"),
	"week":   quantity.MustNew(604800.0, "second"),
	"month":  quantity.MustNew(2.628e6, "second"),
	"year":   quantity.MustNew(3.154e7, "second"),

	// Speed
	"snail":            quantity.MustNew(0.05, "meter/second"),
	"walking":          quantity.MustNew(1.4, "meter/second"),
	"running":          quantity.MustNew(5.0, "meter/second"),
	"cycling":          quantity.MustNew(7.0, "meter/second"),
	"car speed":        quantity.MustNew(25.0, "meter/second"),
	"high speed train": quantity.MustNew(83.0, "meter/second"),
	"airplane":         quantity.MustNew(250.0, "meter/second"),
	"speed of sound":   quantity.MustNew(343.0, "meter/second"),
	"speed of light":   quantity.MustNew(299792458.0, "meter/second"),

	// Temperature
	"freezing point of water": quantity.MustNew(0.0, "celsius"),
	"room temperature":        quantity.MustNew(20.0, "celsius"),
	"body temperature":        quantity.MustNew(37.0, "celsius"),
	"boiling point of water":  quantity.MustNew(100.0, "celsius"),
	"absolute zero":           quantity.MustNew(-273.15, "celsius"),
	"surface of the sun":      quantity.MustNew(5500.0, "celsius"),

	// Energy
	"food calorie":   quantity.MustNew(4184.0, "joule"),
	"battery":        quantity.MustNew(10000.0, "joule"),
	"car battery":    quantity.MustNew(1.0e6, "joule"),
	"gasoline liter": quantity.MustNew(3.42e7, "joule"),
	"ton of tnt":     quantity.MustNew(4.184e9, "joule"),

	// Power
	"light bulb":  quantity.MustNew(60.0, "watt"),
	"human":       quantity.MustNew(100.0, "watt"),
	"car engine":  quantity.MustNew(100000.0, "watt"),
	"jet engine":  quantity.MustNew(1.0e8, "watt"),
	"power plant": quantity.MustNew(1.0e9, "watt"),
	"sun":         quantity.MustNew(3.828e26, "watt"),

	// Pressure
	"atmospheric pressure": quantity.MustNew(101325.0, "pascal"),
	"car tire":             quantity.MustNew(200000.0, "pascal"),
	"bicycle tire":         quantity.MustNew(400000.0, "pascal"),
	"deep ocean":           quantity.MustNew(1.0e7, "pascal"),
	"marianas trench":      quantity.MustNew(1.1e8, "pascal"),

	// Area
	"postage stamp":       quantity.MustNew(4.0, "square_centimeter"),
	"a4 paper":            quantity.MustNew(0.0625, "square_meter"),
	"parking space":       quantity.MustNew(12.0, "square_meter"),
	"tennis court":        quantity.MustNew(260.0, "square_meter"),
	"football field area": quantity.MustNew(7140.0, "square_meter"),
	"central park":        quantity.MustNew(3.41e6, "square_meter"),

	// Volume flow
	"faucet":        quantity.MustNew(0.1, "liter/second"),
	"shower":        quantity.MustNew(0.2, "liter/second"),
	"garden hose":   quantity.MustNew(0.5, "liter/second"),
	"fire hose":     quantity.MustNew(10.0, "liter/second"),
	"river":         quantity.MustNew(1000.0, "cubic_meter/second"),
	"niagara falls": quantity.MustNew(2400.0, "cubic_meter/second"),
}
