package constvars

const (
	GetLocationSuccessMessage        = "Successfully retrieved locations"
	GetCapabilitySuccessMessage      = "Successfully retrieved capabilities"
	GetTestMethodSuccessMessage      = "Successfully retrieved test methods"
	GetUserSuccessMessage            = "Successfully retrieved users"
	GetCommercialGradeSuccessMessage = "Successfully retrieved commercial grades"
	GetIONumberSuccessMessage        = "Successfully retrieved IO numbers"
	GetPlantReactorSuccessMessage    = "Successfully retrieved plant reactors"
	GetAppTechSuccessMessage         = "Successfully retrieved app-tech entries"
	GetTestRequestSuccessMessage     = "Successfully retrieved test requests"

	CreateLookupSuccessMessage = "Successfully created %s entry"
	UpdateLookupSuccessMessage = "Successfully updated %s entry"

	WizardStartSuccessMessage    = "Wizard session ready"
	WizardStateSuccessMessage    = "Successfully retrieved wizard state"
	WizardDraftSuccessMessage    = "Draft updated"
	WizardNextSuccessMessage     = "Moved to step %d"
	WizardPreviousSuccessMessage = "Moved back to step %d"
	WizardDeriveSuccessMessage   = "Sample name derived"

	SampleAddedSuccessMessage   = "Sample %s added"
	SampleUpdatedSuccessMessage = "Sample %s updated"
	SampleRemovedSuccessMessage = "Sample %s removed"
	SampleCopiedSuccessMessage  = "Sample %s copied into the editing buffer"
	SampleEditSuccessMessage    = "Sample %s loaded for editing"
	SampleEditCancelledMessage  = "Edit cancelled"
	SamplesImportedMessage      = "Imported %d samples"

	SubmitRequestSuccessMessage = "Request %s submitted"
	UploadAttachmentSuccess     = "Attachment uploaded"
)
