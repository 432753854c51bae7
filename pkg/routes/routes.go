package pkg

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Mirhasankhan/flood-disaster-server/internal/auth"
	"github.com/Mirhasankhan/flood-disaster-server/internal/campaign"
	"github.com/Mirhasankhan/flood-disaster-server/internal/config"
	"github.com/Mirhasankhan/flood-disaster-server/internal/content"
	"github.com/Mirhasankhan/flood-disaster-server/internal/donation"
	"github.com/Mirhasankhan/flood-disaster-server/internal/supply"
	"github.com/Mirhasankhan/flood-disaster-server/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(
		fx.Annotate(config.NewEmailService,
			fx.As(new(donation.Mailer)),
			fx.As(new(content.Mailer)),
		),
	),
	fx.Provide(config.NewStripeConfig),
	fx.Provide(fx.Annotate(config.NewPaymentService, fx.As(new(donation.PaymentProvider)))),
	fx.Provide(fx.Annotate(auth.NewUserRepository, fx.As(new(auth.UserStore)))),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(fx.Annotate(supply.NewSupplyRepository, fx.As(new(supply.SupplyStore)))),
	fx.Provide(supply.NewSupplyService),
	fx.Provide(supply.NewSupplyHandler),
	fx.Provide(fx.Annotate(campaign.NewCampaignRepository, fx.As(new(campaign.CampaignStore)))),
	fx.Provide(campaign.NewCampaignService),
	fx.Provide(campaign.NewCampaignHandler),
	fx.Provide(fx.Annotate(donation.NewDonationRepository, fx.As(new(donation.DonationStore)))),
	fx.Provide(donation.NewDonationService),
	fx.Provide(donation.NewDonationHandler),
	fx.Provide(fx.Annotate(content.NewContentRepository, fx.As(new(content.ContentStore)))),
	fx.Provide(content.NewContentService),
	fx.Provide(content.NewContentHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := ":" + port

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Server is running on http://localhost" + addr)
			go func() {
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	supplyHandler *supply.SupplyHandler,
	campaignHandler *campaign.CampaignHandler,
	donationHandler *donation.DonationHandler,
	contentHandler *content.ContentHandler,
) {
	e.GET("/", HealthCheck)

	v1 := e.Group("/api/v1")

	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.GET("/users", authHandler.ListUsers)
	v1.PUT("/users/:email/updateRole", authHandler.UpdateRole)
	v1.GET("/profile", authHandler.Profile, middleware.JWTMiddleware)

	v1.POST("/addSupply", supplyHandler.AddSupply)
	v1.GET("/supplies", supplyHandler.ListSupplies)
	v1.GET("/supplies/:id", supplyHandler.GetSupply)
	v1.PUT("/supplies/:id", supplyHandler.UpdateApplied)
	v1.DELETE("/supplies/:id", supplyHandler.DeleteSupply)

	v1.POST("/addApply", supplyHandler.AddApplication)
	v1.GET("/applies", supplyHandler.ListApplications)
	v1.DELETE("/deny/:id", supplyHandler.DenyApplication)
	v1.PUT("/approve/:applyId", supplyHandler.Approve)
	v1.PUT("/approve/:applyId/:supplyId", supplyHandler.Approve)

	// Route spelling ("campain") kept for client compatibility.
	v1.POST("/addCampain", campaignHandler.AddCampaign)
	v1.GET("/campains", campaignHandler.ListCampaigns)
	v1.GET("/campains/:id", campaignHandler.GetCampaign)
	v1.PUT("/campains/:id", campaignHandler.Contribute)
	v1.DELETE("/campains/:id", campaignHandler.DeleteCampaign)

	v1.POST("/donate", donationHandler.Donate)
	v1.GET("/donations", donationHandler.ListDonations)
	v1.GET("/leaderboard", donationHandler.Leaderboard)
	v1.POST("/create-payment-intent", donationHandler.CreatePaymentIntent)

	v1.POST("/testimonials", contentHandler.AddTestimonial)
	v1.GET("/testimonials", contentHandler.ListTestimonials)
	v1.POST("/reviews", contentHandler.AddReview)
	v1.GET("/reviews", contentHandler.ListReviews)
	v1.POST("/volunteer", contentHandler.RegisterVolunteer)
	v1.GET("/volunteers", contentHandler.ListVolunteers)
	v1.POST("/addNews", contentHandler.AddNews)
	v1.GET("/allNews", contentHandler.ListNews)
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}
