package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter รับ Controller Instances เข้ามาเพื่อกำหนด Route
func SetupRouter(
	fc *controllers.FinanceController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		// Finance report: summary cards ignore the day param, tables honor it
		finance := api.Group("/finance")
		{
			finance.GET("/report", fc.GetReport)
			finance.GET("/tables", fc.GetTables)
		}

		// Tour / boat / extra bookings
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		// Catalogs
		activities := api.Group("/activities")
		{
			activities.GET("", controllers.GetActivities)
			activities.POST("", controllers.CreateActivity)
			activities.PUT("/:id", controllers.UpdateActivity)
			activities.DELETE("/:id", controllers.DeleteActivity)
		}
		trips := api.Group("/speedboat-trips")
		{
			trips.GET("", controllers.GetSpeedBoatTrips)
			trips.POST("", controllers.CreateSpeedBoatTrip)
			trips.PUT("/:id", controllers.UpdateSpeedBoatTrip)
			trips.DELETE("/:id", controllers.DeleteSpeedBoatTrip)
		}
		taxis := api.Group("/taxi-options")
		{
			taxis.GET("", controllers.GetTaxiBoatOptions)
			taxis.POST("", controllers.CreateTaxiBoatOption)
			taxis.PUT("/:id", controllers.UpdateTaxiBoatOption)
			taxis.DELETE("/:id", controllers.DeleteTaxiBoatOption)
		}
		extras := api.Group("/extras")
		{
			extras.GET("", controllers.GetExtras)
			extras.POST("", controllers.CreateExtra)
			extras.PUT("/:id", controllers.UpdateExtra)
			extras.DELETE("/:id", controllers.DeleteExtra)
		}

		// Staff / HR
		staff := api.Group("/staff")
		{
			staff.GET("", controllers.GetStaff)
			staff.GET("/:id", controllers.GetStaffByID)
			staff.POST("", controllers.CreateStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}
		advances := api.Group("/salary-advances")
		{
			advances.GET("", controllers.GetSalaryAdvances)
			advances.POST("", controllers.CreateSalaryAdvance)
			advances.DELETE("/:id", controllers.DeleteSalaryAdvance)
		}
		absences := api.Group("/absences")
		{
			absences.GET("", controllers.GetAbsences)
			absences.POST("", controllers.CreateAbsence)
			absences.DELETE("/:id", controllers.DeleteAbsence)
		}

		// Standalone money records
		sales := api.Group("/external-sales")
		{
			sales.GET("", controllers.GetExternalSales)
			sales.POST("", controllers.CreateExternalSale)
			sales.PUT("/:id", controllers.UpdateExternalSale)
			sales.DELETE("/:id", controllers.DeleteExternalSale)
		}
		payments := api.Group("/platform-payments")
		{
			payments.GET("", controllers.GetPlatformPayments)
			payments.POST("", controllers.CreatePlatformPayment)
			payments.DELETE("/:id", controllers.DeletePlatformPayment)
		}
		utilities := api.Group("/utilities")
		{
			utilities.GET("", controllers.GetUtilityRecords)
			utilities.POST("", controllers.CreateUtilityRecord)
			utilities.PUT("/:id", controllers.UpdateUtilityRecord)
			utilities.DELETE("/:id", controllers.DeleteUtilityRecord)
		}

		// Stays & inventory
		walkIns := api.Group("/walk-ins")
		{
			walkIns.GET("", controllers.GetWalkIns)
			walkIns.POST("", controllers.CreateWalkIn)
			walkIns.PUT("/:id", controllers.UpdateWalkIn)
			walkIns.DELETE("/:id", controllers.DeleteWalkIn)
		}
		accommodation := api.Group("/accommodation-bookings")
		{
			accommodation.GET("", controllers.GetAccommodationBookings)
			accommodation.POST("", controllers.CreateAccommodationBooking)
			accommodation.PUT("/:id", controllers.UpdateAccommodationBooking)
			accommodation.DELETE("/:id", controllers.DeleteAccommodationBooking)
		}
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}
		beds := api.Group("/beds")
		{
			beds.GET("", controllers.GetBeds)
			beds.POST("", controllers.CreateBed)
			beds.PUT("/:id", controllers.UpdateBed)
			beds.DELETE("/:id", controllers.DeleteBed)
		}
	}

	return r
}
