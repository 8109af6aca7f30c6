package services

// Notifier fans a domain event out to every live connection currently joined
// to the user's topic. Publishing is fire-and-forget: when no connection is
// joined the event is dropped, and a publish never fails the operation that
// triggered it. Events published to the same topic are delivered in publish
// order.
type Notifier interface {
	Publish(userID, event string, payload interface{})
}
