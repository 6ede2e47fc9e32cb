package main

import (
	"log"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/configuration"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/payment"
	"github.com/kamalakar25/BeautyBliss-project-main/repository"
	"github.com/kamalakar25/BeautyBliss-project-main/routes"
)

func main() {
	cfg := configuration.Load()

	db := configuration.ConfigDB(cfg)
	repo := repository.NewOwnerRepo(db)
	if err := repo.Migrate(); err != nil {
		log.Fatal("migration failed: ", err)
	}

	cache := configuration.InitRedis(cfg.RedisAddr)

	// The gateway client is built once here and injected; nothing else reads
	// the Razorpay credentials.
	gw := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	ledger := booking.NewLedger(repo)
	orch := payment.NewOrchestrator(gw, ledger)
	rec := payment.NewReconciler(gw, ledger)
	verifier := payment.NewVerifier(gw, ledger)

	r := routes.PaymentRoutes(ledger, orch, rec, verifier, cache)

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
