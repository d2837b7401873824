package entity

// JobSummary is the aggregate result of one schedule check invocation.
type JobSummary struct {
	Time                 CivilTime             // Minute used for matching.
	SubscriptionsChecked int                   // Records examined.
	Due                  int                   // Notifications produced by the evaluator.
	Sent                 int                   // Notifications accepted by the transport.
	Failed               int                   // Delivery failures and unattempted sends.
	Expired              []ExpiredSubscription // Endpoints the push service reported gone.
}

// ExpiredSubscription names a push endpoint that no longer accepts messages, together with
// the user whose snapshot record held it.
type ExpiredSubscription struct {
	UserID   string
	Endpoint string
}
