package messages

const (
	Starting = "starting"
	Finished = "finished"
	Success  = "success"
)

const (
	FailedToApplyAction   = "failed-to-apply-action"
	FailedToUpsertRecord  = "failed-to-upsert-record"
	FailedToUnsetKeys     = "failed-to-unset-keys"
	FailedToRemoveRecords = "failed-to-remove-records"
	FailedToEnsureIndex   = "failed-to-ensure-index"

	FailedToFindRecord      = "failed-to-find-record"
	FailedToFindRecords     = "failed-to-find-records"
	FailedToDecodeRecord    = "failed-to-decode-record"
	FailedToListContainers  = "failed-to-list-containers"
	FailedToDropContainer   = "failed-to-drop-container"
	FailedToEnsureContainer = "failed-to-ensure-container"

	DroppedContainer = "dropped-container"
)
