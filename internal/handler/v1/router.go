package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/config"
	"github.com/helioslabs/vitaltrack/pkg/auth"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type RouterDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTManager *auth.JWTManager
	Collector  *metrics.Collector

	Auth        *AuthHandler
	User        *UserHandler
	Metric      *MetricHandler
	Medication  *MedicationHandler
	Meal        *MealHandler
	Appointment *AppointmentHandler
	Goal        *GoalHandler
	Exercise    *ExerciseHandler
	Report      *ReportHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(deps.Logger))
	r.Use(Instrument(deps.Collector))
	r.Use(CORS(deps.Config.CORS))
	r.Use(RateLimit(deps.Config.RateLimit))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": deps.Config.App.Version})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(AuthRateLimit(deps.Config.RateLimit))
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.POST("/refresh", deps.Auth.Refresh)
	}

	protected := api.Group("")
	protected.Use(Authenticate(deps.JWTManager))
	{
		protected.POST("/auth/password", deps.Auth.ChangePassword)

		protected.GET("/users/me", deps.User.Me)
		protected.PUT("/users/me/targets", deps.User.UpdateTargets)

		m := protected.Group("/metrics")
		{
			m.POST("", deps.Metric.Create)
			m.GET("", deps.Metric.List)
			m.GET("/:id", deps.Metric.Get)
			m.PUT("/:id", deps.Metric.Update)
			m.DELETE("/:id", deps.Metric.Delete)
		}

		med := protected.Group("/medications")
		{
			med.POST("", deps.Medication.Create)
			med.GET("", deps.Medication.List)
			med.GET("/adherence", deps.Medication.Adherence)
			med.GET("/:id", deps.Medication.Get)
			med.PUT("/:id", deps.Medication.Update)
			med.DELETE("/:id", deps.Medication.Delete)
			med.POST("/:id/logs", deps.Medication.LogDose)
			med.GET("/:id/logs", deps.Medication.ListLogs)
		}

		meals := protected.Group("/meals")
		{
			meals.POST("", deps.Meal.Create)
			meals.GET("", deps.Meal.List)
			meals.GET("/:id", deps.Meal.Get)
			meals.PUT("/:id", deps.Meal.Update)
			meals.DELETE("/:id", deps.Meal.Delete)
		}

		appts := protected.Group("/appointments")
		{
			appts.POST("", deps.Appointment.Create)
			appts.GET("", deps.Appointment.List)
			appts.GET("/:id", deps.Appointment.Get)
			appts.PUT("/:id", deps.Appointment.Update)
			appts.DELETE("/:id", deps.Appointment.Delete)
			appts.POST("/:id/confirm", deps.Appointment.Confirm)
			appts.POST("/:id/cancel", deps.Appointment.Cancel)
			appts.POST("/:id/complete", deps.Appointment.Complete)
		}

		goals := protected.Group("/goals")
		{
			goals.POST("", deps.Goal.Create)
			goals.GET("", deps.Goal.List)
			goals.GET("/:id", deps.Goal.Get)
			goals.PUT("/:id", deps.Goal.Update)
			goals.DELETE("/:id", deps.Goal.Delete)
		}

		ex := protected.Group("/exercises")
		{
			ex.POST("", deps.Exercise.Create)
			ex.GET("", deps.Exercise.List)
			ex.GET("/:id", deps.Exercise.Get)
			ex.PUT("/:id", deps.Exercise.Update)
			ex.DELETE("/:id", deps.Exercise.Delete)
		}

		protected.GET("/dashboard", deps.Report.Dashboard)

		reports := protected.Group("/reports")
		{
			reports.GET("/weight", deps.Report.Weight)
			reports.GET("/blood-pressure", deps.Report.BloodPressure)
			reports.GET("/heart-rate", deps.Report.HeartRate)
			reports.GET("/sleep", deps.Report.Sleep)
			reports.GET("/nutrition", deps.Report.Nutrition)
			reports.GET("/exercise", deps.Report.Exercise)
			reports.GET("/score", deps.Report.Score)
		}
	}

	return r
}
