package money

import (
	"slices"

	dErrors "contracts/pkg/domain-errors"
)

// Currency is an ISO 4217 currency code, plus a handful of cryptocurrency
// pseudo-codes. The set is closed: construct from external input with
// ParseCurrency; direct conversion bypasses validation.
type Currency string

// Supported currencies.
const (
	// Major Currencies
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CHF Currency = "CHF"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	NZD Currency = "NZD"

	// Asia-Pacific
	CNY Currency = "CNY"
	HKD Currency = "HKD"
	SGD Currency = "SGD"
	KRW Currency = "KRW"
	TWD Currency = "TWD"
	THB Currency = "THB"
	MYR Currency = "MYR"
	IDR Currency = "IDR"
	PHP Currency = "PHP"
	VND Currency = "VND"
	INR Currency = "INR"
	PKR Currency = "PKR"
	BDT Currency = "BDT"
	LKR Currency = "LKR"
	NPR Currency = "NPR"
	MMK Currency = "MMK"
	KHR Currency = "KHR"
	LAK Currency = "LAK"
	BND Currency = "BND"

	// Middle East
	AED Currency = "AED"
	SAR Currency = "SAR"
	QAR Currency = "QAR"
	KWD Currency = "KWD"
	BHD Currency = "BHD"
	OMR Currency = "OMR"
	JOD Currency = "JOD"
	ILS Currency = "ILS"
	IQD Currency = "IQD"
	LBP Currency = "LBP"
	SYP Currency = "SYP"

	// Europe (non-Euro)
	NOK Currency = "NOK"
	SEK Currency = "SEK"
	DKK Currency = "DKK"
	ISK Currency = "ISK"
	PLN Currency = "PLN"
	CZK Currency = "CZK"
	HUF Currency = "HUF"
	RON Currency = "RON"
	BGN Currency = "BGN"
	HRK Currency = "HRK"
	RSD Currency = "RSD"
	TRY Currency = "TRY"
	RUB Currency = "RUB"
	UAH Currency = "UAH"
	BYN Currency = "BYN"
	MDL Currency = "MDL"
	GEL Currency = "GEL"
	AMD Currency = "AMD"
	AZN Currency = "AZN"
	KZT Currency = "KZT"
	UZS Currency = "UZS"
	KGS Currency = "KGS"
	TJS Currency = "TJS"
	TMT Currency = "TMT"

	// Americas
	MXN Currency = "MXN"
	BRL Currency = "BRL"
	ARS Currency = "ARS"
	CLP Currency = "CLP"
	COP Currency = "COP"
	PEN Currency = "PEN"
	VES Currency = "VES"
	UYU Currency = "UYU"
	PYG Currency = "PYG"
	BOB Currency = "BOB"
	CRC Currency = "CRC"
	GTQ Currency = "GTQ"
	HNL Currency = "HNL"
	NIO Currency = "NIO"
	PAB Currency = "PAB"
	DOP Currency = "DOP"
	JMD Currency = "JMD"
	TTD Currency = "TTD"
	BBD Currency = "BBD"
	BSD Currency = "BSD"
	BZD Currency = "BZD"
	XCD Currency = "XCD"
	AWG Currency = "AWG"
	ANG Currency = "ANG"
	SRD Currency = "SRD"
	GYD Currency = "GYD"

	// Africa
	ZAR Currency = "ZAR"
	NGN Currency = "NGN"
	EGP Currency = "EGP"
	MAD Currency = "MAD"
	TND Currency = "TND"
	DZD Currency = "DZD"
	LYD Currency = "LYD"
	KES Currency = "KES"
	TZS Currency = "TZS"
	UGX Currency = "UGX"
	GHS Currency = "GHS"
	ETB Currency = "ETB"
	ZMW Currency = "ZMW"
	MWK Currency = "MWK"
	BWP Currency = "BWP"
	NAD Currency = "NAD"
	MUR Currency = "MUR"
	SCR Currency = "SCR"
	MZN Currency = "MZN"
	AOA Currency = "AOA"
	XOF Currency = "XOF"
	XAF Currency = "XAF"
	RWF Currency = "RWF"
	BIF Currency = "BIF"
	DJF Currency = "DJF"
	SOS Currency = "SOS"
	SDG Currency = "SDG"
	SSP Currency = "SSP"
	GMD Currency = "GMD"
	SLL Currency = "SLL"
	LRD Currency = "LRD"
	CVE Currency = "CVE"
	STN Currency = "STN"
	MGA Currency = "MGA"

	// Oceania
	FJD Currency = "FJD"
	PGK Currency = "PGK"
	WST Currency = "WST"
	TOP Currency = "TOP"
	VUV Currency = "VUV"
	SBD Currency = "SBD"

	// Cryptocurrencies
	BTC  Currency = "BTC"
	ETH  Currency = "ETH"
	USDT Currency = "USDT"
	USDC Currency = "USDC"
)

type currencyInfo struct {
	name   string
	symbol string
}

// catalog is the single source of truth for supported currencies. A missing
// symbol means the code itself is used.
var catalog = map[Currency]currencyInfo{
	USD:  {name: "US Dollar", symbol: "$"},
	EUR:  {name: "Euro", symbol: "€"},
	GBP:  {name: "British Pound Sterling", symbol: "£"},
	JPY:  {name: "Japanese Yen", symbol: "¥"},
	CHF:  {name: "Swiss Franc", symbol: "CHF"},
	CAD:  {name: "Canadian Dollar", symbol: "C$"},
	AUD:  {name: "Australian Dollar", symbol: "A$"},
	NZD:  {name: "New Zealand Dollar", symbol: "NZ$"},
	CNY:  {name: "Chinese Yuan", symbol: "¥"},
	HKD:  {name: "Hong Kong Dollar", symbol: "HK$"},
	SGD:  {name: "Singapore Dollar", symbol: "S$"},
	KRW:  {name: "South Korean Won", symbol: "₩"},
	TWD:  {name: "New Taiwan Dollar"},
	THB:  {name: "Thai Baht", symbol: "฿"},
	MYR:  {name: "Malaysian Ringgit"},
	IDR:  {name: "Indonesian Rupiah", symbol: "Rp"},
	PHP:  {name: "Philippine Peso", symbol: "₱"},
	VND:  {name: "Vietnamese Dong", symbol: "₫"},
	INR:  {name: "Indian Rupee", symbol: "₹"},
	PKR:  {name: "Pakistani Rupee"},
	BDT:  {name: "Bangladeshi Taka"},
	LKR:  {name: "Sri Lankan Rupee"},
	NPR:  {name: "Nepalese Rupee"},
	MMK:  {name: "Myanmar Kyat"},
	KHR:  {name: "Cambodian Riel"},
	LAK:  {name: "Lao Kip"},
	BND:  {name: "Brunei Dollar"},
	AED:  {name: "UAE Dirham", symbol: "د.إ"},
	SAR:  {name: "Saudi Riyal", symbol: "ر.س"},
	QAR:  {name: "Qatari Riyal", symbol: "ر.ق"},
	KWD:  {name: "Kuwaiti Dinar", symbol: "د.ك"},
	BHD:  {name: "Bahraini Dinar", symbol: "د.ب"},
	OMR:  {name: "Omani Rial", symbol: "ر.ع."},
	JOD:  {name: "Jordanian Dinar", symbol: "د.ا"},
	ILS:  {name: "Israeli Shekel", symbol: "₪"},
	IQD:  {name: "Iraqi Dinar"},
	LBP:  {name: "Lebanese Pound"},
	SYP:  {name: "Syrian Pound"},
	NOK:  {name: "Norwegian Krone", symbol: "kr"},
	SEK:  {name: "Swedish Krona", symbol: "kr"},
	DKK:  {name: "Danish Krone", symbol: "kr"},
	ISK:  {name: "Icelandic Króna"},
	PLN:  {name: "Polish Zloty", symbol: "zł"},
	CZK:  {name: "Czech Koruna", symbol: "Kč"},
	HUF:  {name: "Hungarian Forint", symbol: "Ft"},
	RON:  {name: "Romanian Leu", symbol: "lei"},
	BGN:  {name: "Bulgarian Lev", symbol: "лв"},
	HRK:  {name: "Croatian Kuna"},
	RSD:  {name: "Serbian Dinar"},
	TRY:  {name: "Turkish Lira", symbol: "₺"},
	RUB:  {name: "Russian Ruble", symbol: "₽"},
	UAH:  {name: "Ukrainian Hryvnia", symbol: "₴"},
	BYN:  {name: "Belarusian Ruble"},
	MDL:  {name: "Moldovan Leu"},
	GEL:  {name: "Georgian Lari", symbol: "₾"},
	AMD:  {name: "Armenian Dram"},
	AZN:  {name: "Azerbaijani Manat"},
	KZT:  {name: "Kazakhstani Tenge"},
	UZS:  {name: "Uzbekistani Som"},
	KGS:  {name: "Kyrgyzstani Som"},
	TJS:  {name: "Tajikistani Somoni"},
	TMT:  {name: "Turkmenistani Manat"},
	MXN:  {name: "Mexican Peso", symbol: "$"},
	BRL:  {name: "Brazilian Real", symbol: "R$"},
	ARS:  {name: "Argentine Peso", symbol: "$"},
	CLP:  {name: "Chilean Peso", symbol: "$"},
	COP:  {name: "Colombian Peso", symbol: "$"},
	PEN:  {name: "Peruvian Sol", symbol: "S/"},
	VES:  {name: "Venezuelan Bolívar"},
	UYU:  {name: "Uruguayan Peso", symbol: "$U"},
	PYG:  {name: "Paraguayan Guarani"},
	BOB:  {name: "Bolivian Boliviano"},
	CRC:  {name: "Costa Rican Colón"},
	GTQ:  {name: "Guatemalan Quetzal"},
	HNL:  {name: "Honduran Lempira"},
	NIO:  {name: "Nicaraguan Córdoba"},
	PAB:  {name: "Panamanian Balboa"},
	DOP:  {name: "Dominican Peso"},
	JMD:  {name: "Jamaican Dollar"},
	TTD:  {name: "Trinidad and Tobago Dollar"},
	BBD:  {name: "Barbadian Dollar"},
	BSD:  {name: "Bahamian Dollar"},
	BZD:  {name: "Belize Dollar"},
	XCD:  {name: "East Caribbean Dollar"},
	AWG:  {name: "Aruban Florin"},
	ANG:  {name: "Netherlands Antillean Guilder"},
	SRD:  {name: "Surinamese Dollar"},
	GYD:  {name: "Guyanese Dollar"},
	ZAR:  {name: "South African Rand", symbol: "R"},
	NGN:  {name: "Nigerian Naira", symbol: "₦"},
	EGP:  {name: "Egyptian Pound", symbol: "E£"},
	MAD:  {name: "Moroccan Dirham"},
	TND:  {name: "Tunisian Dinar"},
	DZD:  {name: "Algerian Dinar"},
	LYD:  {name: "Libyan Dinar"},
	KES:  {name: "Kenyan Shilling", symbol: "KSh"},
	TZS:  {name: "Tanzanian Shilling"},
	UGX:  {name: "Ugandan Shilling"},
	GHS:  {name: "Ghanaian Cedi", symbol: "₵"},
	ETB:  {name: "Ethiopian Birr"},
	ZMW:  {name: "Zambian Kwacha"},
	MWK:  {name: "Malawian Kwacha"},
	BWP:  {name: "Botswana Pula"},
	NAD:  {name: "Namibian Dollar"},
	MUR:  {name: "Mauritian Rupee"},
	SCR:  {name: "Seychellois Rupee"},
	MZN:  {name: "Mozambican Metical"},
	AOA:  {name: "Angolan Kwanza"},
	XOF:  {name: "West African CFA Franc"},
	XAF:  {name: "Central African CFA Franc"},
	RWF:  {name: "Rwandan Franc"},
	BIF:  {name: "Burundian Franc"},
	DJF:  {name: "Djiboutian Franc"},
	SOS:  {name: "Somali Shilling"},
	SDG:  {name: "Sudanese Pound"},
	SSP:  {name: "South Sudanese Pound"},
	GMD:  {name: "Gambian Dalasi"},
	SLL:  {name: "Sierra Leonean Leone"},
	LRD:  {name: "Liberian Dollar"},
	CVE:  {name: "Cape Verdean Escudo"},
	STN:  {name: "São Tomé and Príncipe Dobra"},
	MGA:  {name: "Malagasy Ariary"},
	FJD:  {name: "Fijian Dollar"},
	PGK:  {name: "Papua New Guinean Kina"},
	WST:  {name: "Samoan Tala"},
	TOP:  {name: "Tongan Paʻanga"},
	VUV:  {name: "Vanuatu Vatu"},
	SBD:  {name: "Solomon Islands Dollar"},
	BTC:  {name: "Bitcoin", symbol: "₿"},
	ETH:  {name: "Ethereum", symbol: "Ξ"},
	USDT: {name: "Tether"},
	USDC: {name: "USD Coin"},
}

// ParseCurrency resolves a currency code from external input.
//
// Errors: CodeInvalidInput when the code is not in the catalog. Matching is
// exact; callers normalise case at the boundary if they need to.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "Invalid currency code: %s", code)
	}
	return c, nil
}

// Currencies returns the whole catalog sorted by code.
func Currencies() []Currency {
	out := make([]Currency, 0, len(catalog))
	for c := range catalog {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// IsValid reports whether the currency is in the catalog.
func (c Currency) IsValid() bool {
	_, ok := catalog[c]
	return ok
}

// Code returns the three or four letter code.
func (c Currency) Code() string {
	return string(c)
}

func (c Currency) String() string {
	return string(c)
}

// Name returns the English display name, or "" for an unknown code.
func (c Currency) Name() string {
	return catalog[c].name
}

// Symbol returns the display symbol, falling back to the code itself.
func (c Currency) Symbol() string {
	if s := catalog[c].symbol; s != "" {
		return s
	}
	return string(c)
}

// DecimalPlaces returns the number of fractional digits used when formatting
// amounts in this currency.
func (c Currency) DecimalPlaces() int {
	switch c {
	case JPY, KRW, VND, CLP, PYG, UGX, RWF, BIF, DJF, XOF, XAF, MGA, VUV:
		return 0
	case BHD, IQD, JOD, KWD, OMR, TND, LYD:
		return 3
	case BTC, ETH, USDT, USDC:
		return 8
	default:
		return 2
	}
}
