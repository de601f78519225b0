package auth

import (
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

const testSecret = "test-secret-test-secret-test-secret"

var _ = ginkgo.Describe("AuthService", func() {
	var (
		manager *tenant.Manager
		db      *tenant.Database
		service *Service
	)

	newService := func(accessTTL, refreshTTL time.Duration) *Service {
		return NewService(
			db,
			NewPasswordHasher(bcrypt.MinCost),
			testSecret,
			accessTTL,
			refreshTTL,
			slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil)),
			nil,
		)
	}

	register := func(email string) *AuthPayload {
		payload, err := service.Register(RegisterDTO{Email: email, Password: "correct_password"})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return payload
	}

	ginkgo.BeforeEach(func() {
		var err error
		manager, err = tenant.New(ginkgo.GinkgoT().TempDir(), "default", slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil)))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		db = manager.Database()
		service = newService(15*time.Minute, 24*time.Hour)
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create the user, a session record and a token pair", func() {
			payload := register("user@example.com")

			gomega.Expect(payload.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(payload.RefreshToken).ToNot(gomega.BeEmpty())
			gomega.Expect(payload.User.Email).To(gomega.Equal("user@example.com"))
			gomega.Expect(db.Auth().Users).To(gomega.HaveLen(1))
			gomega.Expect(db.Auth().Sessions).To(gomega.HaveLen(1))
		})

		ginkgo.It("should never expose the password hash", func() {
			payload := register("user@example.com")

			gomega.Expect(payload.User.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(db.Auth().Users[0].PasswordHash).ToNot(gomega.BeEmpty())
			gomega.Expect(db.Auth().Users[0].PasswordHash).ToNot(gomega.Equal("correct_password"))
		})

		ginkgo.It("should reject a duplicate email", func() {
			register("user@example.com")

			_, err := service.Register(RegisterDTO{Email: "user@example.com", Password: "whatever"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrDuplicateEmail))
		})
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.BeforeEach(func() {
			register("user@example.com")
		})

		ginkgo.It("should issue an independent session per login", func() {
			first, err := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(first.RefreshToken).ToNot(gomega.Equal(second.RefreshToken))
			// one session from registration plus one per login
			gomega.Expect(db.Auth().Sessions).To(gomega.HaveLen(3))

			_, err = service.VerifyRefreshToken(first.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.VerifyRefreshToken(second.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should return the same error for unknown email and wrong password", func() {
			_, unknownErr := service.Authenticate(LoginDTO{Email: "nobody@example.com", Password: "correct_password"})
			_, wrongErr := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "wrong"})

			gomega.Expect(unknownErr).To(gomega.MatchError(internal.ErrInvalidCredentials))
			gomega.Expect(wrongErr).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})
	})

	ginkgo.Describe("Access tokens", func() {
		ginkgo.It("should verify statelessly, without consulting the session store", func() {
			payload := register("user@example.com")

			gomega.Expect(service.Logout(payload.RefreshToken)).To(gomega.Succeed())

			claims, err := service.VerifyAccessToken(payload.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(payload.User.ID))
		})

		ginkgo.It("should reject a refresh token presented as an access token", func() {
			payload := register("user@example.com")

			_, err := service.VerifyAccessToken(payload.RefreshToken)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidAccessToken))
		})

		ginkgo.It("should reject an expired access token", func() {
			expired := newService(-time.Minute, 24*time.Hour)
			token, err := expired.SignAccessToken("u1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.VerifyAccessToken(token)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidAccessToken))
		})
	})

	ginkgo.Describe("Refresh", func() {
		ginkgo.It("should rotate: each refresh token is redeemable exactly once", func() {
			payload := register("user@example.com")

			first, err := service.Refresh(payload.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(first.RefreshToken).ToNot(gomega.Equal(payload.RefreshToken))

			_, err = service.Refresh(payload.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})

		ginkgo.It("should reject a refresh token whose session is gone even with a valid signature", func() {
			payload := register("user@example.com")

			db.Auth().Sessions = nil
			gomega.Expect(db.WriteAuth()).To(gomega.Succeed())

			_, err := service.Refresh(payload.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})

		ginkgo.It("should reject an expired refresh token that still has a session record", func() {
			expired := newService(15*time.Minute, -time.Minute)
			token, err := expired.SignRefreshToken("u1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.VerifyRefreshToken(token)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidRefreshToken))
		})

		ginkgo.It("should reject an access token even when a session record names it", func() {
			payload := register("user@example.com")

			db.Auth().Sessions = append(db.Auth().Sessions, datamodel.Session{
				Token:     payload.Token,
				UserID:    payload.User.ID,
				CreatedAt: time.Now().UTC(),
			})

			_, err := service.VerifyRefreshToken(payload.Token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})

		ginkgo.It("should fail closed on an orphaned session after user deletion", func() {
			payload := register("user@example.com")
			gomega.Expect(service.DeleteUser(payload.User.ID)).To(gomega.Succeed())

			_, err := service.Refresh(payload.RefreshToken)

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should invalidate every session of the user, not just the presented token", func() {
			payload := register("user@example.com")
			r1, err := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			r2, err := service.Authenticate(LoginDTO{Email: "user@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			r1rotated, err := service.Refresh(r1.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Logout(r1rotated.RefreshToken)).To(gomega.Succeed())

			_, err = service.Refresh(r2.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
			_, err = service.Refresh(r1rotated.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
			_, err = service.Refresh(payload.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})

		ginkgo.It("should reject a token that was never issued", func() {
			err := service.Logout("garbage")
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRefreshToken))
		})
	})

	ginkgo.Describe("InvalidateAllSessions", func() {
		ginkgo.It("should report zero without persisting when nothing matched", func() {
			removed, err := service.InvalidateAllSessions("no-such-user")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.BeZero())
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("should require the old password and accept the new one afterwards", func() {
			payload := register("user@example.com")

			err := service.ChangePassword(ChangePasswordDTO{ID: payload.User.ID, OldPassword: "wrong", NewPassword: "new_password"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))

			err = service.ChangePassword(ChangePasswordDTO{ID: payload.User.ID, OldPassword: "correct_password", NewPassword: "new_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authenticate(LoginDTO{Email: "user@example.com", Password: "new_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})
})
