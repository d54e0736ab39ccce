package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "LABREQ_SVC_"
)

const (
	ResourceLocations        = "locations"
	ResourceCapabilities     = "capabilities"
	ResourceTestMethods      = "test-methods"
	ResourceUsers            = "users"
	ResourceCommercialGrades = "commercial-grades"
	ResourceIONumbers        = "io-numbers"
	ResourcePlantReactors    = "plant-reactors"
	ResourceAppTechs         = "app-techs"
	ResourceTestRequests     = "requests"
	ResourceWizard           = "wizard"
	ResourceAttachments      = "attachments"
)

const (
	MongoCollectionLocations        = "locations"
	MongoCollectionCapabilities     = "capabilities"
	MongoCollectionTestMethods      = "test_methods"
	MongoCollectionUsers            = "users"
	MongoCollectionCommercialGrades = "commercial_grades"
	MongoCollectionIONumbers        = "io_numbers"
	MongoCollectionPlantReactors    = "plant_reactors"
	MongoCollectionAppTechs         = "app_techs"
	MongoCollectionTestRequests     = "test_requests"
)

const (
	RedisKeyLocationList        = "lookup:locations"
	RedisKeyCapabilityList      = "lookup:capabilities"
	RedisKeyTestMethodList      = "lookup:test_methods"
	RedisKeyCommercialGradeList = "lookup:commercial_grades"
	RedisKeyIONumberList        = "lookup:io_numbers"
	RedisKeyPlantReactorList    = "lookup:plant_reactors"
	RedisKeyAppTechList         = "lookup:app_techs"

	// Checkpoint keys are scoped by flow kind and wizard session token.
	RedisKeyWizardDraftFormat   = "wizard:%s:%s:draft"
	RedisKeyWizardSamplesFormat = "wizard:%s:%s:samples"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	TestRequestNumberFormatNTR = "NTR-%s-%s"
	TestRequestNumberFormatASR = "ASR-%s-%s"
)
