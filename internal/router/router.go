package router

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	"reptile-husbandry/internal/adapters/auth/hmactoken"
	mem "reptile-husbandry/internal/adapters/storage/memory"
	pg "reptile-husbandry/internal/adapters/storage/postgres"
	"reptile-husbandry/internal/domain/feedings"
	"reptile-husbandry/internal/domain/husbandry"
	"reptile-husbandry/internal/domain/reptiles"
	"reptile-husbandry/internal/domain/schedules"
	"reptile-husbandry/internal/domain/users"
	"reptile-husbandry/internal/middleware"
	"reptile-husbandry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "reptile-husbandry/docs"
)

type Options struct {
	// Secret para firmar/verificar tokens. Si viene vacío se intenta
	// JWT_SECRET y, en último caso, un secret de dev (solo para local/tests).
	Secret string

	// TokenTTL opcional; default 10 minutos.
	TokenTTL time.Duration

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	secret := strings.TrimSpace(opts.Secret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		secret = "dev-secret"
		log.Warn("JWT_SECRET not set, using dev secret", nil)
	}

	tokens, err := hmactoken.New(hmactoken.Config{Secret: secret, TTL: opts.TokenTTL})
	if err != nil {
		// Solo posible con secret vacío, y arriba garantizamos uno.
		panic(err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.AuthContext(tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		usersRepo     users.Repository
		reptilesRepo  reptiles.Repository
		feedingsRepo  feedings.Repository
		husbandryRepo husbandry.Repository
		schedulesRepo schedules.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		reptilesRepo = pg.NewReptilesRepo(db)
		feedingsRepo = pg.NewFeedingsRepo(db)
		husbandryRepo = pg.NewHusbandryRepo(db)
		schedulesRepo = pg.NewSchedulesRepo(db)
	} else {
		usersRepo = mem.NewUsersRepo()
		reptilesRepo = mem.NewReptilesRepo()
		feedingsRepo = mem.NewFeedingsRepo()
		husbandryRepo = mem.NewHusbandryRepo()
		schedulesRepo = mem.NewSchedulesRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	reptilesSvc := reptiles.NewService(reptilesRepo)
	feedingsSvc := feedings.NewService(feedingsRepo)
	husbandrySvc := husbandry.NewService(husbandryRepo)
	schedulesSvc := schedules.NewService(schedulesRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, tokens)
	reptiles.RegisterRoutes(r, reptilesSvc, usersSvc)
	feedings.RegisterRoutes(r, feedingsSvc, reptilesSvc)
	husbandry.RegisterRoutes(r, husbandrySvc, reptilesSvc)
	schedules.RegisterRoutes(r, schedulesSvc, reptilesSvc, usersSvc)

	return r
}
