package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/goquantum/booking/internal/adapters/kv"
	"github.com/goquantum/booking/internal/adapters/memory"
	natsadapter "github.com/goquantum/booking/internal/adapters/nats"
	"github.com/goquantum/booking/internal/adapters/postgres"
	"github.com/goquantum/booking/internal/adapters/valkey"
	"github.com/goquantum/booking/internal/core/domain"
	"github.com/goquantum/booking/internal/core/ports"
	"github.com/goquantum/booking/internal/core/usecases"
	"github.com/goquantum/booking/internal/pkg/config"
	"github.com/goquantum/booking/internal/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeStore()

	var events ports.EventPublisher
	if cfg.NATS.Enabled {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable, lifecycle events disabled", "error", err)
		} else {
			defer pub.Close()
			events = pub
		}
	}

	catalog := domain.NewDefaultCatalog()
	trips := kv.NewTripRepo(store)
	users := kv.NewUserRepo(store)

	app := &app{
		trips:    usecases.NewTripService(trips, users, catalog, events),
		admin:    usecases.NewAdminService(trips, users, events),
		matching: usecases.NewMatchingService(users, catalog),
		accounts: usecases.NewUserService(users),
		schedule: usecases.NewScheduleService(users),
		routes:   usecases.NewRouteService(catalog),
		userRepo: users,
		tripRepo: trips,
	}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.CollectionStore, func(), error) {
	switch cfg.Storage.Backend {
	case "valkey":
		s, err := valkey.New(cfg.Valkey.Addr)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := postgres.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		slog.Warn("using in-memory storage, data will not survive this invocation")
		return memory.New(), func() {}, nil
	}
}

type app struct {
	trips    *usecases.TripService
	admin    *usecases.AdminService
	matching *usecases.MatchingService
	accounts *usecases.UserService
	schedule *usecases.ScheduleService
	routes   *usecases.RouteService
	userRepo ports.UserRepository
	tripRepo ports.TripRepository
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "seed":
		return a.seed(ctx)
	case "stops":
		for i, s := range a.routes.Stops() {
			fmt.Printf("%2d  %s\n", i, s)
		}
		return nil
	case "routes":
		for _, r := range a.routes.Routes() {
			if len(args) > 0 && r.Origin != args[0] {
				continue
			}
			fmt.Printf("%-28s %-18s -> %-18s %6d MT\n", r.ID, r.Origin, r.Destination, floorMT(r.Price))
		}
		return nil
	case "book":
		if len(args) < 5 {
			return fmt.Errorf("usage: book <passenger-id> <route-id> <yyyy-mm-dd> <seats> <M-Pesa|E-Mola|Cash>")
		}
		date, err := domain.ParseDateKey(args[2])
		if err != nil {
			return err
		}
		seats, err := strconv.Atoi(args[3])
		if err != nil {
			return err
		}
		trip, err := a.trips.CreateTrip(ctx, args[0], args[1], date, seats, domain.PaymentMethod(args[4]))
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "parcel":
		if len(args) < 5 {
			return fmt.Errorf("usage: parcel <passenger-id> <route-id> <yyyy-mm-dd> <Pequeno|Médio|Grande> <description>")
		}
		date, err := domain.ParseDateKey(args[2])
		if err != nil {
			return err
		}
		est, _ := a.routes.ParcelEstimate(args[1])
		trip, err := a.trips.RequestParcel(ctx, args[0], args[1], date, domain.ParcelDetails{
			Size:        domain.ParcelSize(args[3]),
			Description: args[4],
		})
		if err != nil {
			return err
		}
		fmt.Printf("reference estimate: %d MT (admin quote decides)\n", floorMT(est))
		printTrip(trip)
		return nil
	case "quote":
		if len(args) < 2 {
			return fmt.Errorf("usage: quote <trip-id> <price>")
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		trip, err := a.admin.SetParcelQuote(ctx, args[0], price)
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "accept":
		if len(args) < 2 {
			return fmt.Errorf("usage: accept <trip-id> <M-Pesa|E-Mola|Cash>")
		}
		trip, err := a.trips.AcceptParcelQuote(ctx, args[0], domain.PaymentMethod(args[1]))
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "drivers":
		if len(args) < 1 {
			return fmt.Errorf("usage: drivers <trip-id>")
		}
		trip, err := a.trips.TripByID(ctx, args[0])
		if err != nil {
			return err
		}
		available, err := a.matching.AvailableDrivers(ctx, trip)
		if err != nil {
			return err
		}
		if len(available) == 0 {
			fmt.Println("no compatible drivers for that date")
			return nil
		}
		for _, d := range available {
			day := domain.EffectiveRoute(&d, trip.Date)
			fmt.Printf("%-36s %-20s %.1f★  %s -> %s\n", d.ID, d.Name, d.Rating, day.Origin, day.Destination)
		}
		return nil
	case "assign":
		if len(args) < 2 {
			return fmt.Errorf("usage: assign <trip-id> <driver-id>")
		}
		trip, err := a.admin.AssignDriver(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "start":
		if len(args) < 1 {
			return fmt.Errorf("usage: start <trip-id>")
		}
		trip, err := a.trips.StartTrip(ctx, args[0])
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "complete":
		if len(args) < 2 {
			return fmt.Errorf("usage: complete <trip-id> <rating 1-5> [tags...]")
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		trip, err := a.trips.CompleteTripWithRating(ctx, args[0], rating, args[2:])
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "cancel":
		if len(args) < 1 {
			return fmt.Errorf("usage: cancel <trip-id>")
		}
		trip, err := a.trips.CancelTrip(ctx, args[0])
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "reschedule":
		if len(args) < 2 {
			return fmt.Errorf("usage: reschedule <trip-id> <yyyy-mm-dd>")
		}
		date, err := domain.ParseDateKey(args[1])
		if err != nil {
			return err
		}
		trip, err := a.trips.RescheduleTrip(ctx, args[0], date)
		if err != nil {
			return err
		}
		printTrip(trip)
		return nil
	case "trips":
		if len(args) < 2 {
			return fmt.Errorf("usage: trips <user-id> <passenger|driver|admin>")
		}
		list, err := a.trips.TripsForUser(ctx, args[0], domain.UserRole(args[1]))
		if err != nil {
			return err
		}
		for i := range list {
			printTrip(&list[i])
		}
		return nil
	case "users":
		list, err := a.accounts.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range list {
			fmt.Printf("%-36s %-22s %-9s %-9s %s\n", u.ID, u.Name, u.Role, u.Status, u.Email)
		}
		return nil
	case "register":
		if len(args) < 4 {
			return fmt.Errorf("usage: register <name> <email> <phone> <passenger|driver>")
		}
		u, err := a.accounts.Register(ctx, domain.User{
			Name:  args[0],
			Email: args[1],
			Phone: args[2],
			Role:  domain.UserRole(args[3]),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s (%s)\n", u.ID, u.Name, u.Status)
		return nil
	case "approve":
		if len(args) < 1 {
			return fmt.Errorf("usage: approve <user-id>")
		}
		_, err := a.accounts.UpdateStatus(ctx, args[0], domain.StatusActive)
		return err
	case "suspend":
		if len(args) < 1 {
			return fmt.Errorf("usage: suspend <user-id>")
		}
		_, err := a.accounts.UpdateStatus(ctx, args[0], domain.StatusSuspended)
		return err
	case "schedule-day":
		if len(args) < 5 {
			return fmt.Errorf("usage: schedule-day <driver-id> <yyyy-mm-dd> <origin> <destination> <true|false>")
		}
		date, err := domain.ParseDateKey(args[1])
		if err != nil {
			return err
		}
		active, err := strconv.ParseBool(args[4])
		if err != nil {
			return err
		}
		return a.schedule.UpdateSpecificDate(ctx, args[0], date, domain.DailyRoute{
			Origin:      args[2],
			Destination: args[3],
			Active:      active,
		})
	case "effective":
		if len(args) < 2 {
			return fmt.Errorf("usage: effective <driver-id> <yyyy-mm-dd>")
		}
		date, err := domain.ParseDateKey(args[1])
		if err != nil {
			return err
		}
		day, err := a.schedule.EffectiveRoute(ctx, args[0], date)
		if err != nil {
			return err
		}
		if day == nil || !day.Active {
			fmt.Println("no availability")
			return nil
		}
		fmt.Printf("%s -> %s\n", day.Origin, day.Destination)
		return nil
	case "revenue":
		sum, err := a.admin.Revenue(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("revenue:    %8d MT (%d trips)\n", floorMT(sum.Revenue), sum.Trips)
		fmt.Printf("commission: %8d MT\n", floorMT(sum.Commission))
		fmt.Printf("payouts:    %8d MT\n", floorMT(sum.DriverPayouts))
		return nil
	case "payments":
		var method domain.PaymentMethod
		order := usecases.SortDateDesc
		if len(args) > 0 && args[0] != "all" {
			method = domain.PaymentMethod(args[0])
		}
		if len(args) > 1 {
			order = usecases.PaymentSort(args[1])
		}
		list, err := a.admin.Payments(ctx, method, order)
		if err != nil {
			return err
		}
		for i := range list {
			t := &list[i]
			fmt.Printf("%-36s %s %-8s %-13s %6d MT\n", t.ID, t.Date, t.Status, t.PaymentMethod, floorMT(t.TotalPrice))
		}
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// seed loads the demo accounts and one completed reference trip.
func (a *app) seed(ctx context.Context) error {
	schedule := domain.DefaultWeeklySchedule()
	users := []domain.User{
		{
			ID: "admin1", Name: "Administrador GoQuantum", Email: "goquantum32@gmail.com",
			Phone: "840000000", Role: domain.RoleAdmin, Status: domain.StatusActive,
		},
		{
			ID: "driver1", Name: "João Condutor", Email: "joao@driver.mz",
			Phone: "841111111", Role: domain.RoleDriver, Status: domain.StatusActive,
			VehiclePlate: "ABC-123-MC", LicensePhoto: "carta_joao.jpg",
			CurrentLocation: "Maputo", Rating: 4.8,
			Schedule: &schedule,
			SpecificSchedule: map[domain.DateKey]domain.DailyRoute{},
		},
		{
			ID: "driver2", Name: "Pedro Pendente", Email: "pedro@driver.mz",
			Phone: "843333333", Role: domain.RoleDriver, Status: domain.StatusPending,
			VehiclePlate: "PEND-001", LicensePhoto: "carta_nova.jpg", Rating: 5.0,
			Schedule: &schedule,
			SpecificSchedule: map[domain.DateKey]domain.DailyRoute{},
		},
		{
			ID: "pass1", Name: "Maria Viajante", Email: "maria@client.mz",
			Phone: "842222222", Role: domain.RolePassenger, Status: domain.StatusActive,
			IDNumber: "11001100N",
		},
	}
	for i := range users {
		if err := a.userRepo.Put(ctx, &users[i]); err != nil {
			return err
		}
	}

	driverID := "driver1"
	commission, earnings := domain.Split(500)
	sample := domain.Trip{
		ID:             "t1",
		RouteID:        "maputo_xai-xai",
		DriverID:       &driverID,
		PassengerID:    "pass1",
		Date:           "2024-05-20",
		Seats:          1,
		Type:           domain.TypePassenger,
		Status:         domain.StatusCompleted,
		TotalPrice:     500,
		Commission:     commission,
		DriverEarnings: earnings,
		PaymentMethod:  domain.PayMPesa,
		Rating:         5,
		FeedbackTags:   []string{"Condução Segura"},
	}
	if err := a.tripRepo.Put(ctx, &sample); err != nil {
		return err
	}

	slog.Info("seeded demo data", "users", len(users), "trips", 1)
	return nil
}

func printTrip(t *domain.Trip) {
	driver := "-"
	if t.DriverID != nil {
		driver = *t.DriverID
	}
	fmt.Printf("%s  %s  %-13s route=%s date=%s driver=%s total=%d MT commission=%d MT earnings=%d MT\n",
		t.ID, t.Type, t.Status, t.RouteID, t.Date, driver,
		floorMT(t.TotalPrice), floorMT(t.Commission), floorMT(t.DriverEarnings))
}

// floorMT floors for display only; stored amounts stay exact.
func floorMT(v float64) int64 {
	return int64(math.Floor(v))
}

func usage() {
	fmt.Fprintln(os.Stderr, `goquantum - EN1 corridor booking

commands:
  seed                                                   load demo accounts
  stops | routes [origin]                                catalog queries
  book <pass> <route> <date> <seats> <method>            seat booking
  parcel <pass> <route> <date> <size> <description>      parcel request
  quote <trip> <price> | accept <trip> <method>          parcel quoting
  drivers <trip> | assign <trip> <driver>                driver matching
  start <trip> | complete <trip> <rating> [tags...]      trip progress
  cancel <trip> | reschedule <trip> <date>               passenger changes
  trips <user> <role> | users | register ...             accounts
  approve <user> | suspend <user>                        admin approval
  schedule-day <driver> <date> <o> <d> <active>          availability
  effective <driver> <date>                              resolved schedule
  revenue | payments [method] [sort]                     reconciliation`)
}
