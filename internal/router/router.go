package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
	ModifyReservation(c *ginext.Context)
	AddReservationParticipant(c *ginext.Context)
	RemoveReservationParticipant(c *ginext.Context)
	RecordAttendance(c *ginext.Context)
	ListTimeSlots(c *ginext.Context)
	CreateParticipant(c *ginext.Context)
	GetParticipant(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	UpdateParticipant(c *ginext.Context)
	DeleteParticipant(c *ginext.Context)
	ListParticipantReservations(c *ginext.Context)
	ListParticipantSanctions(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)
	CreateBuilding(c *ginext.Context)
	ListBuildings(c *ginext.Context)
	CreateSanction(c *ginext.Context)
	ListSanctions(c *ginext.Context)
	DeleteSanction(c *ginext.Context)
	RoomUsageReport(c *ginext.Context)
	TopParticipantsReport(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.DELETE("/reservations/:id", h.DeleteReservation)
		api.PATCH("/reservations/:id", h.ModifyReservation)
		api.POST("/reservations/:id/participants", h.AddReservationParticipant)
		api.DELETE("/reservations/:id/participants/:ci", h.RemoveReservationParticipant)
		api.POST("/reservations/:id/attendance", h.RecordAttendance)

		// Participants
		api.POST("/participants", h.CreateParticipant)
		api.GET("/participants", h.ListParticipants)
		api.GET("/participants/:ci", h.GetParticipant)
		api.PATCH("/participants/:ci", h.UpdateParticipant)
		api.DELETE("/participants/:ci", h.DeleteParticipant)
		api.GET("/participants/:ci/reservations", h.ListParticipantReservations)
		api.GET("/participants/:ci/sanctions", h.ListParticipantSanctions)

		// Rooms & buildings
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:building/:name", h.GetRoom)
		api.PATCH("/rooms/:building/:name", h.UpdateRoom)
		api.DELETE("/rooms/:building/:name", h.DeleteRoom)
		api.POST("/buildings", h.CreateBuilding)
		api.GET("/buildings", h.ListBuildings)

		// Time slots
		api.GET("/timeslots", h.ListTimeSlots)

		// Sanctions
		api.POST("/sanctions", h.CreateSanction)
		api.GET("/sanctions", h.ListSanctions)
		api.DELETE("/sanctions/:id", h.DeleteSanction)

		// Reports
		api.GET("/reports/room-usage", h.RoomUsageReport)
		api.GET("/reports/top-participants", h.TopParticipantsReport)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
