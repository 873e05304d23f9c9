package routes

import (
	"healthtrack-app-server/internal/ai"
	"healthtrack-app-server/internal/config"
	"healthtrack-app-server/internal/handlers"
	"healthtrack-app-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRoutes configures the application routes. Collections and handlers
// are constructed once here and shared across requests.
func SetupRoutes(router *gin.Engine, st *store.Store, cfg *config.Config, completer ai.Completer, log zerolog.Logger) {
	users := st.Collection(cfg.Tables.Users, "userId")
	records := st.Collection(cfg.Tables.MedicalRecords, "recordId")
	conversations := st.Collection(cfg.Tables.Conversations, "conversationId")
	reminders := st.Collection(cfg.Tables.Reminders, "reminderId")

	userHandler := handlers.NewUserHandler(users, log)
	recordHandler := handlers.NewMedicalRecordHandler(records, users, log)
	reminderHandler := handlers.NewReminderHandler(reminders, log)
	chatHandler := handlers.NewChatHandler(users, conversations, completer, log)

	router.POST("/users", userHandler.CreateUser)
	router.GET("/users/:userId", userHandler.GetUser)
	router.PUT("/users/:userId", userHandler.UpdateUser)

	router.POST("/medical-records", recordHandler.CreateMedicalRecord)
	router.GET("/medical-records/:userId", recordHandler.GetMedicalRecords)
	router.PUT("/medical-records/:recordId", recordHandler.UpdateMedicalRecord)
	router.DELETE("/medical-records/:recordId", recordHandler.DeleteMedicalRecord)

	router.GET("/reminders/:userId", reminderHandler.GetReminders)
	router.POST("/reminders", reminderHandler.SaveReminder)

	router.POST("/chat", chatHandler.Chat)

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
