//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domreview "store-reservation/internal/domain/review"
	"store-reservation/internal/domain/user"
	"store-reservation/internal/handler/api"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/httptest"
	"store-reservation/tests/common/testutil"
	commandsmock "store-reservation/tests/mock/commands"
	queriesmock "store-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const authorID = "visitor1"

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the auth middleware
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("subject_id", authorID)
		c.Set("subject_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Add)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", authMiddleware, s.handler.Edit)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestAdd
// ================================================================================

func (s *ReviewHandlerTestSuite) TestAdd() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildAddRequestDTO()
	returnView := builder.NewReviewBuilder().BuildView()
	expectedResult := &commands.AddReviewResult{ReviewID: returnView.ID}

	s.Run("success: returns 201 Created with the stored review", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), reqBody.ToCommand(authorID)).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Rating, response.Rating)
	})

	s.Run("success: rating zero and empty text pass binding", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("rating", 0),
			testutil.Field("text", ""),
		)

		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request when reservation_id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reservation_id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "author does not match",
				commandsError:  commands.ErrReviewNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not your reservation",
			},
			{
				name:           "duplicate review",
				commandsError:  commands.ErrDuplicateReview,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Review already exists",
			},
			{
				name:           "visit not completed",
				commandsError:  commands.ErrReservationNotVisited,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Visit not completed",
			},
			{
				name:           "rating out of range",
				commandsError:  domreview.ErrRatingOutOfRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid review fields",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Add review failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Add(gomock.Any(), reqBody.ToCommand(authorID)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	returnView := builder.NewReviewBuilder().BuildView()
	url := "/reviews/1"

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Text, response.Text)
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *ReviewHandlerTestSuite) TestEdit() {
	url := "/reviews/1"

	reqBody := builder.NewReviewBuilder().BuildEditRequestDTO()
	returnView := builder.NewReviewBuilder().BuildView()

	s.Run("success: returns 200 OK with the updated review", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), reqBody.ToCommand(1, authorID)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/abc", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "review not found",
				commandsError:  commands.ErrReviewNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "review not owned",
				commandsError:  commands.ErrReviewNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not your review",
			},
			{
				name:           "text too long",
				commandsError:  domreview.ErrTextTooLong,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid review fields",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Edit review failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Edit(gomock.Any(), reqBody.ToCommand(1, authorID)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("success: overlong text is rejected by the usecase, not binding", func() {
		longBody := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
			b.Text = strings.Repeat("a", 201)
		}).BuildEditRequestDTO()

		s.mockCommands.EXPECT().Edit(gomock.Any(), longBody.ToCommand(1, authorID)).
			Return(domreview.ErrTextTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, longBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid review fields")
	})
}
