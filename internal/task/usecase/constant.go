package usecase

const (
	defaultListLimit    = 50
	maxListLimit        = 200
	defaultUpcomingDays = 7

	noteConfirmed = "confirmed"
	noteRejected  = "rejected"
)
