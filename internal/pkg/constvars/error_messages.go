package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"oneof":           "must be one of [%s]",
	"numeric":         "must be a number",
	"sample_category": "must be a known sample category",
	"priority":        "must be either Normal or Urgent",
	"plant":           "must be a known plant",
	"polymer_type":    "must be a known polymer type",
	"sample_form":     "must be a known physical form",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientDuplicateSampleName           = "a sample with this generated name already exists in the request"
	ErrClientSampleNameNotDerived          = "complete the required sample fields before adding the sample"
	ErrClientSampleIndexOutOfRange         = "the requested sample does not exist"
	ErrClientWizardSessionMissing          = "wizard session header is missing"
	ErrClientUnknownWizardFlow             = "unknown wizard flow"
	ErrClientAlreadyAtFirstStep            = "already at the first step"
	ErrClientNotAtFinalStep                = "the request can only be submitted from the final step"
	ErrClientReferenceDataUnavailable      = "reference data is temporarily unavailable"
	ErrClientCSVNoValidRows                = "the uploaded file contains no valid sample rows"
	ErrClientCSVMalformed                  = "the uploaded file is not a valid CSV file"
	ErrClientCSVAllDuplicates              = "every sample in the uploaded file already exists in the request"
	ErrClientSubmissionFailed              = "submitting the request failed, please try again"
	ErrClientTestRequestNotFound           = "the requested test request does not exist"
	ErrClientFileTooLarge                  = "the uploaded file is too large"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "Validation failed"
	ErrDevInvalidInput                 = "Invalid input provided"
	ErrDevCannotParseJSON              = "Failed to parse JSON data"
	ErrDevCannotMarshalJSON            = "Failed to marshal data to JSON"
	ErrDevCannotParseMultipartForm     = "Failed to parse multipart form data"
	ErrDevServerDeadlineExceeded       = "Server deadline exceeded while processing request"
	ErrDevURLParamValidationFailed     = "URL parameter validation failed for param: %s"
	ErrDevDBFailedToFindDocument       = "Database failed to find document"
	ErrDevDBFailedToInsertDocument     = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "Database failed to update document"
	ErrDevDBFailedToDeleteDocument     = "Database failed to delete document"
	ErrDevDBFailedToIterateDocuments   = "Database failed to iterate documents"
	ErrDevDBStringNotObjectID          = "Provided string is not a valid ObjectID"
	ErrDevRedisFailedToSet             = "Redis failed to set key"
	ErrDevRedisFailedToGet             = "Redis failed to get key: %s"
	ErrDevRedisFailedToDelete          = "Redis failed to delete key"
	ErrDevMinioFailedToCreateObject    = "Minio failed to create object in bucket: %s"
	ErrDevQueueFailedToPublish         = "Message queue failed to publish message"
	ErrDevQueuePublishNotConfirmed     = "Message queue did not confirm the published message"
	ErrDevDuplicateSampleName          = "Generated sample name already present in collection"
	ErrDevSampleNameEmpty              = "Sample buffer has no generated name"
	ErrDevSampleIndexOutOfRange        = "Sample index out of range"
	ErrDevStepValidationFailed         = "Wizard step validation failed"
	ErrDevWizardAtFirstStep            = "Wizard already at first step"
	ErrDevWizardNotAtFinalStep         = "Submit called before the final step"
	ErrDevUnknownWizardFlow            = "No flow descriptor registered for the requested kind"
	ErrDevCheckpointMalformed          = "Checkpoint store returned malformed JSON, treating as empty"
	ErrDevCSVNoValidRows               = "CSV contained no rows with a generated name"
	ErrDevCSVMalformed                 = "CSV text failed to parse"
	ErrDevCSVAllDuplicates             = "Every parsed CSV row duplicated an existing sample name"
	ErrDevWizardSessionHeaderMissing   = "Wizard session header absent from request"
	ErrDevReferenceDataFetchFailed     = "Reference data fetch failed"
	ErrDevTestRequestSubmissionFailed  = "Persisting the submitted test request failed"
	ErrDevTestRequestNotFound          = "No test request document matched the given ID"
	ErrDevAttachmentUploadFailed       = "Uploading the attachment to object storage failed"
	ErrDevRequestBodyExceedsSizeLimit  = "Request body exceeds the configured size limit"
	ErrDevUnknownErrorRecoveredByPanic = "Unknown error recovered by panic handler"
)
