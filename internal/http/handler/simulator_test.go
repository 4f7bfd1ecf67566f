package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"minitwit/internal/core"
	"minitwit/internal/http/handler"
	"minitwit/internal/http/handler/fake"
	"minitwit/internal/http/payload"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SimHandler", func() {
	var (
		fakeSim  *fake.SimulatorService
		decoder  handler.RequestDecoder
		router   *mux.Router
		recorder *httptest.ResponseRecorder
	)

	serve := func(method, target, body string) {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		router.ServeHTTP(recorder, req)
	}

	BeforeEach(func() {
		fakeSim = new(fake.SimulatorService)
		decoder = payload.Decoder{}
		recorder = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		router = mux.NewRouter()
		handler.NewSimHandler(zap.NewNop().Sugar(), decoder, fakeSim).Routes(router)
	})

	Describe("POST /register", func() {
		When("the simulator accepts the user", func() {
			BeforeEach(func() {
				fakeSim.RegisterUserReturns(core.NoContent())
			})

			It("should respond 204 without a body", func() {
				serve(http.MethodPost, "/register?latest=1", `{"username":"testUser","email":"testuser@email.com","pwd":"testpass"}`)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(recorder.Body.Len()).To(BeZero())

				_, msg, latest := fakeSim.RegisterUserArgsForCall(0)
				Expect(msg).To(Equal(core.RegisterMessage{Username: "testUser", Email: "testuser@email.com", Password: "testpass"}))
				Expect(latest).To(Equal(1))
			})
		})

		When("the simulator rejects the user", func() {
			BeforeEach(func() {
				fakeSim.RegisterUserReturns(core.BadRequest("The username is already taken"))
			})

			It("should respond with the error body", func() {
				serve(http.MethodPost, "/register", `{"username":"TestUser1","email":"a@b","pwd":"p"}`)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(recorder.Body.String()).To(MatchJSON(`{"error_msg":"The username is already taken","status_code":400}`))

				_, _, latest := fakeSim.RegisterUserArgsForCall(0)
				Expect(latest).To(Equal(core.NoLatest))
			})
		})

		When("the payload cannot be decoded", func() {
			It("should respond 400 and still record latest", func() {
				serve(http.MethodPost, "/register?latest=7", `{"username":`)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(recorder.Body.String()).To(ContainSubstring("decoding json payload"))
				Expect(fakeSim.RegisterUserCallCount()).To(BeZero())

				Expect(fakeSim.UpdateLatestCallCount()).To(Equal(1))
				_, latest := fakeSim.UpdateLatestArgsForCall(0)
				Expect(latest).To(Equal(7))
			})
		})

		When("latest is malformed", func() {
			It("should pass NoLatest", func() {
				serve(http.MethodPost, "/register?latest=abc", `{"username":"a","email":"a@b","pwd":"p"}`)

				_, _, latest := fakeSim.RegisterUserArgsForCall(0)
				Expect(latest).To(Equal(core.NoLatest))
			})
		})
	})

	Describe("POST /login", func() {
		When("the credentials are accepted", func() {
			BeforeEach(func() {
				fakeSim.LoginReturns(core.OK(core.Identity{UserID: 1, Username: "TestUser1", Token: "t"}))
			})

			It("should respond with the identity", func() {
				serve(http.MethodPost, "/login", `{"username":"TestUser1","pwd":"user1"}`)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(recorder.Body.String()).To(MatchJSON(`{"user_id":1,"username":"TestUser1","token":"t"}`))
				_, msg := fakeSim.LoginArgsForCall(0)
				Expect(msg).To(Equal(core.LoginMessage{Username: "TestUser1", Password: "user1"}))
			})
		})

		When("the credentials are rejected", func() {
			BeforeEach(func() {
				fakeSim.LoginReturns(core.Unauthorized("Incorrect password or username"))
			})

			It("should respond 401", func() {
				serve(http.MethodPost, "/login", `{"username":"TestUser3","pwd":"user1"}`)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(recorder.Body.String()).To(MatchJSON(`{"error_msg":"Incorrect password or username","status_code":401}`))
			})
		})

		When("the decoder fails", func() {
			var fakeDecoder *fake.RequestDecoder

			BeforeEach(func() {
				fakeDecoder = new(fake.RequestDecoder)
				fakeDecoder.DecodeJSONPayloadReturns(errors.New("broken body"))
				decoder = fakeDecoder
			})

			It("should not call the simulator", func() {
				serve(http.MethodPost, "/login", `{}`)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(recorder.Body.String()).To(MatchJSON(`{"error_msg":"broken body","status_code":400}`))
				Expect(fakeSim.LoginCallCount()).To(BeZero())
				Expect(fakeDecoder.DecodeJSONPayloadCallCount()).To(Equal(1))
			})
		})
	})

	Describe("/fllws/{username}", func() {
		It("should follow on POST", func() {
			fakeSim.AddFollowerReturns(core.NoContent())
			serve(http.MethodPost, "/fllws/TestUser1?latest=3", `{"follow":"TestUser2"}`)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
			_, target, msg, latest := fakeSim.AddFollowerArgsForCall(0)
			Expect(target).To(Equal("TestUser1"))
			Expect(msg).To(Equal(core.FollowMessage{Follow: "TestUser2"}))
			Expect(latest).To(Equal(3))
		})

		It("should list follows on GET", func() {
			fakeSim.GetFollowsReturns(core.OK(core.FollowsRecord{Follows: []string{"TestUser2"}}))
			serve(http.MethodGet, "/fllws/TestUser1?no=5&latest=4", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"follows":["TestUser2"]}`))
			_, username, no := fakeSim.GetFollowsArgsForCall(0)
			Expect(username).To(Equal("TestUser1"))
			Expect(no).To(Equal(5))

			_, latest := fakeSim.UpdateLatestArgsForCall(0)
			Expect(latest).To(Equal(4))
		})
	})

	Describe("/msgs", func() {
		It("should post a message", func() {
			fakeSim.AddMessageReturns(core.NoContent())
			serve(http.MethodPost, "/msgs/TestUser1", `{"content":"Test message"}`)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
			_, username, msg, _ := fakeSim.AddMessageArgsForCall(0)
			Expect(username).To(Equal("TestUser1"))
			Expect(msg).To(Equal(core.PostMessage{Content: "Test message"}))
		})

		It("should list all messages", func() {
			fakeSim.GetMessagesReturns(core.OK([]core.MessageRecord{{Content: "hi", PubDate: 1, User: "TestUser1"}}))
			serve(http.MethodGet, "/msgs", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`[{"content":"hi","pub_date":1,"user":"TestUser1"}]`))
			_, no := fakeSim.GetMessagesArgsForCall(0)
			Expect(no).To(BeZero())
		})

		It("should list a user's messages", func() {
			fakeSim.GetUserMessagesReturns(core.BadRequest("User does not exist"))
			serve(http.MethodGet, "/msgs/ghost?no=abc", "")

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			_, username, no := fakeSim.GetUserMessagesArgsForCall(0)
			Expect(username).To(Equal("ghost"))
			Expect(no).To(BeZero())
		})

		It("should refuse unsupported methods", func() {
			serve(http.MethodDelete, "/msgs/TestUser1", "")
			Expect(recorder.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("GET /latest", func() {
		It("should return the latest value", func() {
			fakeSim.GetLatestReturns(core.OK(core.LatestRecord{Latest: 42}))
			serve(http.MethodGet, "/latest", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"latest":42}`))
			Expect(fakeSim.UpdateLatestCallCount()).To(BeZero())
		})

		It("should hide internal errors", func() {
			fakeSim.GetLatestReturns(core.InternalError())
			serve(http.MethodGet, "/latest", "")

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).To(MatchJSON(`{"error_msg":"unexpected error occurred","status_code":500}`))
		})
	})
})
