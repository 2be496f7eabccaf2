package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/jwtx"
	"github.com/joblinkhq/joblink/pkg/slogx"

	_ "github.com/joblinkhq/joblink/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	CredentialService   *service.CredentialService
	SessionService      *service.SessionService
	InvitationService   *service.InvitationService
	RegistrationService *service.RegistrationService
	OnboardingService   *service.OnboardingService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRegistration()
	r.registerInvitations()
	r.registerOnboarding()
	r.registerNavigation()
	r.registerSystem()
	r.registerPages()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			JobLink Auth Service API
//	@version		0.1.0
//	@description	Role-aware authentication and authorization core for the JobLink job board:
//	@description	credential verification, signed session tokens with per-request claim refresh,
//	@description	single-use company invitations and invitation-gated registration.
//
//	@contact.name				JobLink Team
//	@contact.url				https://github.com/joblinkhq/joblink
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}". Browsers may use the session cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		CredentialService: r.CredentialService,
		SessionService:    r.SessionService,
	}

	// POST /api/auth/login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/logout - clears the cookie, works with or without a session
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(&LogoutHandler{},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	sessionHandler := &SessionHandler{SessionService: r.SessionService}

	// GET /api/auth/session - claims fetch, every page load hits this
	r.Mux.Handle("GET /api/auth/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleGet),
			httpx.AuthnMiddleware(r.SessionService),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)

	// POST /api/auth/session - partial claim update, re-signs the token
	r.Mux.Handle("POST /api/auth/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandlePost),
			httpx.AuthnMiddleware(r.SessionService),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRegistration() {
	h := &RegisterHandler{
		RegistrationService: r.RegistrationService,
		SessionService:      r.SessionService,
	}

	// POST /api/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /api/register",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	mintHandler := &InvitationMintHandler{InvitationService: r.InvitationService}
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	validateHandler := &InvitationValidateHandler{InvitationService: r.InvitationService}

	adminOnly := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.SessionService),
			httpx.RequireRole(string(domain.RoleAdmin)),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/admin/invitation", adminOnly(mintHandler))
	r.Mux.Handle("GET /api/admin/invitation", adminOnly(listHandler))

	// Validation is read-only and deliberately public: the signup page has
	// to check the token before the visitor has any session.
	r.Mux.Handle("POST /api/admin/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerOnboarding() {
	h := &OnboardingHandler{
		OnboardingService: r.OnboardingService,
		SessionService:    r.SessionService,
	}

	// Only candidates go through onboarding; company and admin accounts are
	// provisioned complete.
	r.Mux.Handle("PATCH /api/onboarding",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.SessionService),
			httpx.RequireRole(string(domain.RoleCandidate)),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNavigation() {
	h := &NavigationHandler{}

	r.Mux.Handle("GET /api/navigation",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.SessionService),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPages() {
	// Catch-all for page routes. The gate middleware evaluates the
	// role/onboarding policy and redirects before the page is served.
	r.Mux.Handle("/",
		httpx.Chain(&PageHandler{},
			GateMiddleware(r.SessionService),
		),
	)
}
