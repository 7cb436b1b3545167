package plan

type Plan struct {
	ID       string `json:"id"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
}

var plans = []Plan{
	{ID: "1", Price: 99, Duration: "1 Month Access"},
	{ID: "2", Price: 199, Duration: "3 Months Access"},
	{ID: "3", Price: 399, Duration: "6 Months Access"},
	{ID: "4", Price: 699, Duration: "1 Year Access"},
}

type SubscribeResponse struct {
	Plan         Plan `json:"plan"`
	IsSubscribed bool `json:"isSubscribed"`
}
