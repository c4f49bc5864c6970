package monitor

const (
	starting = "starting"
	finished = "finished"

	failedToRecordHistogramValue = "failed-to-record-histogram-value"
	failedToSendMetric           = "failed-to-send-metric"

	failedToGrantKey   = "failed-to-grant-key"
	failedToFetchKeys  = "failed-to-fetch-keys"
	failedToDeleteKeys = "failed-to-delete-keys"
)
