package userauth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// AuthControllerRoutes are the paths the controller mounts its handlers on.
type AuthControllerRoutes struct {
	Signup  string
	Login   string
	Profile string
}

// AuthController exposes the JSON auth endpoints. Responses are deliberately
// flat: login failures share one shape regardless of cause, and signup
// failures never say which field or constraint was responsible.
type AuthController struct {
	Logger     Logger
	Auth       Authenticator
	Registry   AccountRegisterer
	Provider   IdentityProvider
	Routes     *AuthControllerRoutes
	ContextKey string
}

type AuthControllerOption func(*AuthController) *AuthController

func WithAuthenticator(auth Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auth = auth
		return c
	}
}

func WithRegisterer(registry AccountRegisterer) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Registry = registry
		return c
	}
}

func WithIdentityProvider(provider IdentityProvider) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Provider = provider
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func WithContextKey(key string) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.ContextKey = key
		return c
	}
}

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:     defLogger{},
		ContextKey: "auth_user",
		Routes: &AuthControllerRoutes{
			Signup:  "/signup",
			Login:   "/login",
			Profile: "/profile",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auth == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Registry == nil {
		panic("Missing AccountRegisterer in auth controller...")
	}

	if c.Provider == nil {
		panic("Missing IdentityProvider in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the controller. guard runs in front of every
// protected route; signup and login stay public.
func RegisterAuthRoutes(app *fiber.App, guard fiber.Handler, opts ...AuthControllerOption) *AuthController {
	controller := NewAuthController(opts...)

	app.Post(controller.Routes.Signup, controller.SignupCreate)
	app.Post(controller.Routes.Login, controller.LoginPost)
	app.Get(controller.Routes.Profile, guard, controller.ProfileShow)

	return controller
}

// SignupRequest payload
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
		),
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

func (a *AuthController) SignupCreate(ctx *fiber.Ctx) error {
	payload := new(SignupRequest)

	if err := ctx.BodyParser(payload); err != nil {
		return badRequest(ctx)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(ctx)
	}

	if _, err := a.Registry.RegisterUser(ctx.UserContext(), payload.Username, payload.Email, payload.Password); err != nil {
		a.Logger.Error("signup registration failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating user",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
	})
}

func (a *AuthController) LoginPost(ctx *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := ctx.BodyParser(payload); err != nil {
		return badRequest(ctx)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(ctx)
	}

	token, err := a.Auth.Login(ctx.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		a.Logger.Error("login failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error logging in",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}

// ProfileShow requires the bearer guard to have stored verified claims under
// ContextKey. A valid token whose account has since vanished is a 404.
func (a *AuthController) ProfileShow(ctx *fiber.Ctx) error {
	claims := a.requestClaims(ctx)
	if claims == nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}

	identity, err := a.Provider.FindIdentityByID(ctx.UserContext(), claims.UserID())
	if err != nil {
		if errors.IsNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		a.Logger.Error("profile lookup failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching profile details",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"username": identity.Username(),
		"email":    identity.Email(),
	})
}

func (a *AuthController) requestClaims(ctx *fiber.Ctx) AuthClaims {
	if claims, ok := ctx.Locals(a.ContextKey).(AuthClaims); ok {
		return claims
	}
	if claims, ok := ClaimsFromContext(ctx.UserContext()); ok {
		return claims
	}
	return nil
}

func badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request payload",
	})
}
