package market

// DefaultBaseURL is the public marketplace API host
const DefaultBaseURL = "https://market.csgo.com"

// API paths
const (
	PathItems          = "/api/v2/items"
	PathSetPrice       = "/api/v2/set-price"
	PathSearchItem     = "/api/v2/search-item-by-hash-name"
	PathSearchListAll  = "/api/v2/search-list-items-by-hash-name-all"
	ParamKey           = "key"
	ParamItemID        = "item_id"
	ParamPrice         = "price"
	ParamCurrency      = "cur"
	ParamHashName      = "hash_name"
	ParamListHashNames = "list_hash_name[]"
)

// MaxBatchNames caps the hash names sent in one batched price lookup
const MaxBatchNames = 50

// Operation names used in logs and metrics
const (
	OpFetchListings  = "fetch_listings"
	OpApplyPrice     = "apply_price"
	OpLowestPrice    = "lowest_price"
	OpLowestPriceAll = "lowest_price_batch"
)

// Error messages
const (
	ErrMsgNotSuccessful = "marketplace reported success=false"
	ErrMsgDecode        = "failed to decode marketplace response"
)

// Log messages
const (
	LogMsgListingsFetched  = "Fetched marketplace listings"
	LogMsgListingsFailed   = "Could not refresh listings, keeping local state"
	LogMsgSkippedListing   = "Skipping listing with unparsable fields"
	LogMsgPriceApplied     = "Price applied"
	LogMsgPriceRejected    = "Price update rejected"
	LogMsgLowestPriceError = "Could not fetch lowest price"
)
