//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"store-reservation/internal/handler/dto/request"
	"store-reservation/internal/handler/dto/response"
	"store-reservation/tests/common/authtest"
	"store-reservation/tests/common/dbtest"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	usersURL        = "/api/users"
	partnersURL     = "/api/partners"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// seeds a partner with one store and returns the partner id and store name
func (s *ReservationSuite) seedStore(t *testing.T, partnerID, storeName string) {
	t.Helper()
	dbtest.CreateTestPartner(t, s.DB, partnerID)
	dbtest.CreateTestStore(t, s.DB, partnerID, storeName)
}

func (s *ReservationSuite) TestRegisterAndLogin() {
	s.Run("Normal case: registered user can log in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, request.RegisterRequest{
			ID:            "newvisitor",
			Password:      "password123",
			PasswordCheck: "password123",
			Phone:         "010-1234-5678",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "newvisitor", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: duplicate login id is rejected", func() {
		t := s.T()

		reg := request.RegisterRequest{
			ID:            "dupvisitor",
			Password:      "password123",
			PasswordCheck: "password123",
			Phone:         "01012345678",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reg, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reg, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: password confirmation mismatch", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, request.RegisterRequest{
			ID:            "mismatch",
			Password:      "password123",
			PasswordCheck: "password456",
			Phone:         "01012345678",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Normal case: partner registration uses its own namespace", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, partnersURL, request.RegisterRequest{
			ID:            "sameid",
			Password:      "password123",
			PasswordCheck: "password123",
			Phone:         "01012345678",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The same id is still free on the user side
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, request.RegisterRequest{
			ID:            "sameid",
			Password:      "password123",
			PasswordCheck: "password123",
			Phone:         "01012345678",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("Normal case: request, confirm, then arrival check", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		userToken := authtest.CreateUserAndLogin(t, s.DB, s.Router, "visitor1")

		visitAt := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			StoreName: "Sample Diner",
			People:    2,
			Time:      visitAt,
		}, userToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotZero(t, created.ID)
		require.Equal(t, "visitor1", created.UserID)
		require.Equal(t, "partner1", created.PartnerID)
		require.Equal(t, "REQUESTING", created.Status)
		require.Equal(t, dbtest.TestPhone, created.Phone)

		// Partner confirms
		partnerToken := authtest.LoginPartner(t, s.Router, "partner1", dbtest.TestPassword)
		statusURL := fmt.Sprintf("%s/%d/status", reservationsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, request.ChangeStatusRequest{
			Status: "CONFIRM",
		}, partnerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "CONFIRM", confirmed.Status)

		// Kiosk arrival check with the phone tail, no login required
		arrivalURL := fmt.Sprintf("%s/%d/arrival", reservationsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, arrivalURL, request.ArrivalCheckRequest{
			PhoneLast4: dbtest.TestPhone[len(dbtest.TestPhone)-4:],
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var arrived response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &arrived))
		require.Equal(t, "ARRIVED", arrived.Status)
	})

	s.Run("Error case: arrival check rejects a wrong phone tail", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		id := dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(2*time.Hour), "CONFIRM")

		url := fmt.Sprintf("%s/%d/arrival", reservationsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.ArrivalCheckRequest{
			PhoneLast4: "0000",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Phone number does not match")
	})

	s.Run("Error case: arrival check before confirmation", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		id := dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(2*time.Hour), "REQUESTING")

		url := fmt.Sprintf("%s/%d/arrival", reservationsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.ArrivalCheckRequest{
			PhoneLast4: dbtest.TestPhone[len(dbtest.TestPhone)-4:],
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Reservation is not confirmed")
	})

	s.Run("Error case: arrival window closes ten minutes before the visit", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		id := dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(5*time.Minute), "CONFIRM")

		url := fmt.Sprintf("%s/%d/arrival", reservationsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.ArrivalCheckRequest{
			PhoneLast4: dbtest.TestPhone[len(dbtest.TestPhone)-4:],
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Arrival check window has closed")
	})

	s.Run("Error case: another partner cannot change the status", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		id := dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(2*time.Hour), "REQUESTING")

		otherToken := authtest.CreatePartnerAndLogin(t, s.DB, s.Router, "partner2")
		url := fmt.Sprintf("%s/%d/status", reservationsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, request.ChangeStatusRequest{
			Status: "CONFIRM",
		}, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not your reservation")
	})

	s.Run("Auth test: creating a reservation requires a user login", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			StoreName: "Sample Diner",
			People:    2,
			Time:      time.Now().Add(2 * time.Hour),
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		// A partner token is the wrong role for this endpoint
		partnerToken := authtest.LoginPartner(t, s.Router, "partner1", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			StoreName: "Sample Diner",
			People:    2,
			Time:      time.Now().Add(2 * time.Hour),
		}, partnerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *ReservationSuite) TestReservationDetail() {
	s.Run("Normal case: user and owning partner may read, others may not", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		id := dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(2*time.Hour), "CONFIRM")
		url := fmt.Sprintf("%s/%d", reservationsURL, id)

		userToken := authtest.LoginUser(t, s.Router, "visitor1", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, userToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		partnerToken := authtest.LoginPartner(t, s.Router, "partner1", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, partnerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		strangerToken := authtest.CreateUserAndLogin(t, s.DB, s.Router, "visitor2")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})

	s.Run("Error case: missing reservation returns 404", func() {
		t := s.T()

		token := authtest.CreateUserAndLogin(t, s.DB, s.Router, "visitor1")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/9999", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *ReservationSuite) TestReservationLists() {
	s.Run("Normal case: both sides see the reservation, filter narrows by status", func() {
		t := s.T()

		s.seedStore(t, "partner1", "Sample Diner")
		dbtest.CreateTestUser(t, s.DB, "visitor1")
		dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(2*time.Hour), "CONFIRM")
		dbtest.CreateTestReservation(t, s.DB, "visitor1", "partner1", "Sample Diner",
			time.Now().Add(3*time.Hour), "REQUESTING")

		userToken := authtest.LoginUser(t, s.Router, "visitor1", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL+"/me/reservations", nil, userToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var userList []*response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &userList))
		require.Len(t, userList, 2)

		partnerToken := authtest.LoginPartner(t, s.Router, "partner1", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			partnersURL+"/me/reservations?status=CONFIRM", nil, partnerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var partnerList []*response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &partnerList))
		require.Len(t, partnerList, 1)
		require.Equal(t, "CONFIRM", partnerList[0].Status)
	})

	s.Run("Error case: an empty list returns 404", func() {
		t := s.T()

		token := authtest.CreateUserAndLogin(t, s.DB, s.Router, "visitor1")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL+"/me/reservations", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No reservations found")
	})
}
