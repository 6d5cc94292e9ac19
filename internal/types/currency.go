package types

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
// TODO add more currencies or look for a library
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"aud": "AU$",
	"cad": "CA$",
	"chf": "CHF",
	"sek": "kr",
	"nzd": "NZ$",
	"hkd": "HK$",
	"sgd": "S$",
	"jpy": "¥",
	"cny": "¥",
	"inr": "₹",
	"brl": "R$",
	"rub": "₽",
	"mxn": "MX$",
	"krw": "₩",
	"try": "₺",
	"zar": "R",
	"myr": "RM",
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[code]; ok {
		return symbol
	}
	return code
}

// currencyZeroDecimalExponents holds currencies that do not carry a minor
// unit (e.g. JPY, KRW have no cents). Anything absent from this map is
// assumed to use 2 decimal places, the common case.
var currencyZeroDecimalExponents = map[string]int32{
	"jpy": 0,
	"krw": 0,
	"vnd": 0,
	"clp": 0,
	"isk": 0,
}

// GetCurrencyPrecision returns the number of minor-unit decimal places for a
// given ISO currency code, defaulting to 2 for currencies not listed as
// zero-decimal.
func GetCurrencyPrecision(code string) int32 {
	if precision, ok := currencyZeroDecimalExponents[code]; ok {
		return precision
	}
	return 2
}
