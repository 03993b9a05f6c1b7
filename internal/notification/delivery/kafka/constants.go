package kafka

const (
	// TopicWorkOrderEvents is the default topic when none is configured.
	TopicWorkOrderEvents = "fieldservice.workorder.events"

	// ConsumerGroupNotifications is the default consumer group.
	ConsumerGroupNotifications = "fieldservice-notifier"
)
