package domain

type RoomUsageRow struct {
	RoomName     string `json:"room_name"`
	Building     string `json:"building"`
	Reservations int    `json:"reservations"`
	NoShows      int    `json:"no_shows"`
}

type ParticipantUsageRow struct {
	CI           string `json:"ci"`
	Name         string `json:"name"`
	Reservations int    `json:"reservations"`
}
