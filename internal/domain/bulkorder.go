// package domain/bulkorder.go
package domain

// Output sheet names, in the order they are written.
const (
	SheetCustomer     = "Customer_Sample"
	SheetProducts     = "Products_Sample"
	SheetTransactions = "Transactions_Sample"
)

// XLSXMimeType is the content type of the generated workbook.
const XLSXMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Source columns of the transactions export.
const (
	ColInvoice     = "comprobante"
	ColDate        = "fecha"
	ColTaxID       = "cuit"
	ColArticleID   = "art_id"
	ColArticleName = "art_nombre"
	ColTotal       = "total"
	ColQuantity    = "art_Cantidad"
	ColUnitPrice   = "precio_unidad"
)

// Source columns of the buyers export.
const (
	ColBuyerName       = "Buyer Name"
	ColBuyerEmail      = "Buyer Email"
	ColBuyerTaxID      = "Tax ID"
	ColShippingCity    = "Shipping City"
	ColShippingAddress = "Shipping Address"
	ColBuyerPhone      = "Buyer Phone Number"
)

// TransactionColumns lists the columns required in the transactions export.
var TransactionColumns = []string{
	ColInvoice, ColDate, ColTaxID, ColArticleID, ColArticleName, ColTotal, ColQuantity, ColUnitPrice,
}

// BuyerColumns lists the columns required in the buyers export.
var BuyerColumns = []string{
	ColBuyerName, ColBuyerEmail, ColBuyerTaxID, ColShippingCity, ColShippingAddress, ColBuyerPhone,
}

// TransactionsSampleColumns is the fixed header of the Transactions_Sample sheet.
var TransactionsSampleColumns = []string{
	"Invoice#", "Date", "Created_at", "Suffix", "First Name", "Last Name",
	"Customer Email", "SKU", "Description", "Invoice total Inc", "Total Units", "Unit Value",
}

// ProductsSampleColumns is the catalog schema emitted when no products sheet is available.
var ProductsSampleColumns = []string{
	"sku", "attribute_set_code", "product_type", "categories", "category_ids",
	"product_websites", "name", "description", "short_description", "weight",
	"product_online", "visibility", "price", "url_key", "thumbnail_image",
	"small_image", "base_image", "swatch_image", "qty", "is_in_stock",
	"additional_attributes", "seller_id", "source_code",
}

// Customer columns populated by the synthesizer.
const (
	CustEmail                  = "email"
	CustWebsite                = "_website"
	CustStore                  = "_store"
	CustCreatedIn              = "created_in"
	CustDisableAutoGroupChange = "disable_auto_group_change"
	CustFirstName              = "firstname"
	CustLastName               = "lastname"
	CustPrefix                 = "prefix"
	CustSuffix                 = "suffix"
	CustTaxVat                 = "taxvat"
	CustWebsiteID              = "website_id"
	CustAddressCity            = "_address_city"
	CustAddressFax             = "_address_fax"
	CustAddressFirstName       = "_address_firstname"
	CustAddressLastName        = "_address_lastname"
	CustAddressPostcode        = "_address_postcode"
	CustAddressRegion          = "_address_region"
	CustAddressStreet          = "_address_street"
	CustAddressTelephone       = "_address_telephone"
	CustDefaultBilling         = "_address_default_billing_"
	CustDefaultShipping        = "_address_default_shipping_"
)

// CustomerTemplateColumns is the customer import schema used when no template is uploaded.
var CustomerTemplateColumns = []string{
	"email", "_website", "_store", "confirmation", "created_at", "created_in",
	"disable_auto_group_change", "dob", "firstname", "gender", "group_id", "lastname",
	"middlename", "password_hash", "prefix", "rp_token", "rp_token_created_at", "store_id",
	"suffix", "taxvat", "cnpj", "website_id", "password", "_address_city", "_address_company",
	"_address_country_id", "_address_fax", "_address_firstname", "_address_lastname",
	"_address_middlename", "_address_postcode", "_address_prefix", "_address_region",
	"_address_street", "_address_suffix", "_address_telephone", "_address_vat_id",
	"_address_default_billing_", "_address_default_shipping_",
}

// InputFile is an uploaded spreadsheet held in memory.
type InputFile struct {
	Name string
	Data []byte
}

// BuildRequest groups the files of one bulk order run. Products and Template are optional.
type BuildRequest struct {
	Transactions InputFile
	Buyers       InputFile
	Products     *InputFile
	Template     *InputFile
	RequestID    string
}

// BuildResult is the generated workbook plus the non-fatal warnings raised while building it.
type BuildResult struct {
	Content  []byte
	FileName string
	Warnings []string
	Rows     int
	Matched  int
}

// TransactionRow is one line of the transactions export, enriched through the pipeline.
type TransactionRow struct {
	Invoice     string
	RawDate     string
	RawTaxID    string
	TaxID       string
	ArticleID   string
	Description string
	Total       string
	Quantity    string
	UnitPrice   string

	// Filled by the join.
	BuyerName    string
	BuyerEmail   string
	MatchedTaxID string
	Buyer        *BuyerRecord

	// Derived.
	FirstName string
	LastName  string
	Suffix    string
	Date      string
	CreatedAt string
}

// BuyerRecord is one line of the buyers export.
type BuyerRecord struct {
	TaxID           string
	CleanTaxID      string
	Name            string
	Email           string
	ShippingAddress string
	ShippingCity    string
	Phone           string
}

// CustomerRow holds every customer field the synthesizer populates.
type CustomerRow struct {
	Email                  string
	Website                string
	Store                  string
	CreatedIn              string
	DisableAutoGroupChange int
	FirstName              string
	LastName               string
	Prefix                 string
	Suffix                 string
	TaxVat                 string
	WebsiteID              int
	AddressCity            string
	AddressFax             string
	AddressFirstName       string
	AddressLastName        string
	AddressPostcode        string
	AddressRegion          string
	AddressStreet          string
	AddressTelephone       interface{}
	DefaultBilling         int
	DefaultShipping        int
}

// CustomerDefaults are the store constants written on every customer row.
type CustomerDefaults struct {
	Website                string
	Store                  string
	CreatedIn              string
	DisableAutoGroupChange int
	Prefix                 string
	WebsiteID              int
	AddressFax             string
	DefaultBilling         int
	DefaultShipping        int
}

// DefaultCustomerDefaults returns the constants of the Argentine storefront.
func DefaultCustomerDefaults() CustomerDefaults {
	return CustomerDefaults{
		Website:                "Argentina",
		Store:                  "RM_ARG_VW",
		CreatedIn:              "WIX",
		DisableAutoGroupChange: 0,
		Prefix:                 "NHE",
		WebsiteID:              2,
		AddressFax:             "ARG",
		DefaultBilling:         1,
		DefaultShipping:        1,
	}
}

// DefaultCreatedAtOffsetDays is how many days before the invoice date a customer is created.
const DefaultCreatedAtOffsetDays = 2

// Field is a single column/value pair.
type Field struct {
	Column string
	Value  interface{}
}

// Fields returns the populated columns in the order they are applied onto the template.
func (r CustomerRow) Fields() []Field {
	return []Field{
		{CustEmail, r.Email},
		{CustWebsite, r.Website},
		{CustStore, r.Store},
		{CustCreatedIn, r.CreatedIn},
		{CustDisableAutoGroupChange, r.DisableAutoGroupChange},
		{CustFirstName, r.FirstName},
		{CustLastName, r.LastName},
		{CustPrefix, r.Prefix},
		{CustSuffix, r.Suffix},
		{CustTaxVat, r.TaxVat},
		{CustWebsiteID, r.WebsiteID},
		{CustAddressCity, r.AddressCity},
		{CustAddressFax, r.AddressFax},
		{CustAddressFirstName, r.AddressFirstName},
		{CustAddressLastName, r.AddressLastName},
		{CustAddressPostcode, r.AddressPostcode},
		{CustAddressRegion, r.AddressRegion},
		{CustAddressStreet, r.AddressStreet},
		{CustAddressTelephone, r.AddressTelephone},
		{CustDefaultBilling, r.DefaultBilling},
		{CustDefaultShipping, r.DefaultShipping},
	}
}

// Table is an ordered header plus rows of cell values, ready to be written as a sheet.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// NewTable returns an empty table with a copy of the given header.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: [][]interface{}{}}
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
