package schema

import "github.com/leerob727/openrtb/native1"

// Enum value names follow the declarations of the origin schema.
var (
	layoutIDs = newEnum("LayoutID", map[int32]string{
		1: "CONTENT_WALL",
		2: "APP_WALL",
		3: "NEWS_FEED",
		4: "CHAT_LIST",
		5: "CAROUSEL",
		6: "CONTENT_STREAM",
		7: "GRID",
	})

	adUnitIDs = newEnum("AdUnitID", map[int32]string{
		1: "PAID_SEARCH_UNIT",
		2: "RECOMMENDATION_WIDGET",
		3: "PROMOTED_LISTING",
		4: "IAB_IN_AD_NATIVE",
		5: "CUSTOM",
	})

	imageAssetTypes = newEnum("ImageAssetType", map[int32]string{
		1: "ICON",
		2: "LOGO",
		3: "MAIN",
	})

	dataAssetTypes = newEnum("DataAssetType", map[int32]string{
		1:  "SPONSORED",
		2:  "DESC",
		3:  "RATING",
		4:  "LIKES",
		5:  "DOWNLOADS",
		6:  "PRICE",
		7:  "SALEPRICE",
		8:  "PHONE",
		9:  "ADDRESS",
		10: "DESC2",
		11: "DISPLAYURL",
		12: "CTATEXT",
	})

	protocols = newEnum("Protocol", map[int32]string{
		1:  "VAST_1_0",
		2:  "VAST_2_0",
		3:  "VAST_3_0",
		4:  "VAST_1_0_WRAPPER",
		5:  "VAST_2_0_WRAPPER",
		6:  "VAST_3_0_WRAPPER",
		7:  "VAST_4_0",
		8:  "VAST_4_0_WRAPPER",
		9:  "DAAST_1_0",
		10: "DAAST_1_0_WRAPPER",
	})
)

var (
	requestTitle = newMessageDescriptor("Title", []FieldDescriptor{
		{Number: 1, Name: "len", Cardinality: Required, Kind: Int32},
	})

	requestImage = newMessageDescriptor("Image", []FieldDescriptor{
		{Number: 1, Name: "type", Cardinality: Optional, Kind: Enum, Enum: imageAssetTypes},
		{Number: 2, Name: "w", Cardinality: Optional, Kind: Int32},
		{Number: 3, Name: "h", Cardinality: Optional, Kind: Int32},
		{Number: 4, Name: "wmin", Cardinality: Optional, Kind: Int32},
		{Number: 5, Name: "hmin", Cardinality: Optional, Kind: Int32},
		{Number: 6, Name: "mimes", Cardinality: Repeated, Kind: String},
	})

	requestVideo = newMessageDescriptor("Video", []FieldDescriptor{
		{Number: 1, Name: "mimes", Cardinality: Repeated, Kind: String},
		{Number: 2, Name: "minduration", Cardinality: Required, Kind: Int32},
		{Number: 3, Name: "maxduration", Cardinality: Required, Kind: Int32},
		{Number: 4, Name: "protocols", Cardinality: Repeated, Kind: Enum, Enum: protocols},
	})

	requestData = newMessageDescriptor("Data", []FieldDescriptor{
		{Number: 1, Name: "type", Cardinality: Required, Kind: Enum, Enum: dataAssetTypes},
		{Number: 2, Name: "len", Cardinality: Optional, Kind: Int32},
	})

	requestAsset = newMessageDescriptor("Asset", []FieldDescriptor{
		{Number: 1, Name: "id", Cardinality: Required, Kind: Int32},
		{Number: 2, Name: "required", Cardinality: Optional, Kind: Bool, Default: native1.DefaultAssetRequired},
		{Number: 3, Name: "title", Cardinality: Optional, Kind: Message, Message: requestTitle},
		{Number: 4, Name: "img", Cardinality: Optional, Kind: Message, Message: requestImage},
		{Number: 5, Name: "video", Cardinality: Optional, Kind: Message, Message: requestVideo},
		{Number: 6, Name: "data", Cardinality: Optional, Kind: Message, Message: requestData},
	})

	request = newMessageDescriptor("NativeRequest", []FieldDescriptor{
		{Number: 1, Name: "ver", Cardinality: Required, Kind: String},
		{Number: 2, Name: "layout", Cardinality: Optional, Kind: Enum, Enum: layoutIDs},
		{Number: 3, Name: "adunit", Cardinality: Optional, Kind: Enum, Enum: adUnitIDs},
		{Number: 4, Name: "plcmtcnt", Cardinality: Optional, Kind: Int32, Default: native1.DefaultPlcmtCnt},
		{Number: 5, Name: "seq", Cardinality: Optional, Kind: Int32, Default: native1.DefaultSeq},
		{Number: 6, Name: "assets", Cardinality: Repeated, Kind: Message, Message: requestAsset},
	})
)

var (
	responseTitle = newMessageDescriptor("Title", []FieldDescriptor{
		{Number: 1, Name: "text", Cardinality: Required, Kind: String},
	})

	responseImage = newMessageDescriptor("Image", []FieldDescriptor{
		{Number: 1, Name: "url", Cardinality: Optional, Kind: String},
		{Number: 2, Name: "w", Cardinality: Optional, Kind: Int32},
		{Number: 3, Name: "h", Cardinality: Optional, Kind: Int32},
	})

	responseVideo = newMessageDescriptor("Video", []FieldDescriptor{
		{Number: 1, Name: "vasttag", Cardinality: Repeated, Kind: String},
	})

	responseData = newMessageDescriptor("Data", []FieldDescriptor{
		{Number: 1, Name: "label", Cardinality: Optional, Kind: String},
		{Number: 2, Name: "value", Cardinality: Required, Kind: String},
	})

	link = newMessageDescriptor("Link", []FieldDescriptor{
		{Number: 1, Name: "url", Cardinality: Required, Kind: String},
		{Number: 2, Name: "clicktrackers", Cardinality: Repeated, Kind: String},
		{Number: 3, Name: "fallback", Cardinality: Optional, Kind: String},
	})

	responseAsset = newMessageDescriptor("Asset", []FieldDescriptor{
		{Number: 1, Name: "id", Cardinality: Required, Kind: Int32},
		{Number: 2, Name: "required", Cardinality: Optional, Kind: Bool, Default: native1.DefaultAssetRequired},
		{Number: 3, Name: "title", Cardinality: Optional, Kind: Message, Message: responseTitle},
		{Number: 4, Name: "img", Cardinality: Optional, Kind: Message, Message: responseImage},
		{Number: 5, Name: "video", Cardinality: Optional, Kind: Message, Message: responseVideo},
		{Number: 6, Name: "data", Cardinality: Optional, Kind: Message, Message: responseData},
		{Number: 7, Name: "link", Cardinality: Optional, Kind: Message, Message: link},
	})

	response = newMessageDescriptor("NativeResponse", []FieldDescriptor{
		{Number: 1, Name: "ver", Cardinality: Optional, Kind: String},
		{Number: 2, Name: "assets", Cardinality: Repeated, Kind: Message, Message: responseAsset},
		{Number: 3, Name: "link", Cardinality: Required, Kind: Message, Message: link},
		{Number: 4, Name: "imptrackers", Cardinality: Repeated, Kind: String},
		{Number: 5, Name: "jstracker", Cardinality: Optional, Kind: String},
	})
)

// Request returns the native markup request descriptor.
func Request() *MessageDescriptor { return request }

// RequestAsset returns the request asset descriptor.
func RequestAsset() *MessageDescriptor { return requestAsset }

// RequestTitle returns the request title asset descriptor.
func RequestTitle() *MessageDescriptor { return requestTitle }

// RequestImage returns the request image asset descriptor.
func RequestImage() *MessageDescriptor { return requestImage }

// RequestVideo returns the request video asset descriptor.
func RequestVideo() *MessageDescriptor { return requestVideo }

// RequestData returns the request data asset descriptor.
func RequestData() *MessageDescriptor { return requestData }

// Response returns the native markup response descriptor.
func Response() *MessageDescriptor { return response }

// ResponseAsset returns the response asset descriptor.
func ResponseAsset() *MessageDescriptor { return responseAsset }

// ResponseTitle returns the response title asset descriptor.
func ResponseTitle() *MessageDescriptor { return responseTitle }

// ResponseImage returns the response image asset descriptor.
func ResponseImage() *MessageDescriptor { return responseImage }

// ResponseVideo returns the response video asset descriptor.
func ResponseVideo() *MessageDescriptor { return responseVideo }

// ResponseData returns the response data asset descriptor.
func ResponseData() *MessageDescriptor { return responseData }

// Link returns the link descriptor shared by the response and its assets.
func Link() *MessageDescriptor { return link }
