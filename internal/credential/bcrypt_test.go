package credential_test

import (
	"strings"

	"minitwit/internal/credential"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("BcryptHasher", func() {
	var hasher *credential.BcryptHasher

	BeforeEach(func() {
		hasher = credential.NewBcryptHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("should produce a hash that verifies", func() {
			hash, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(Equal("testpass"))
			Expect(hasher.Compare(hash, "testpass")).To(Succeed())
		})

		It("should salt every hash", func() {
			first, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())
			second, err := hasher.Hash("testpass")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should reject passwords longer than 72 bytes", func() {
			_, err := hasher.Hash(strings.Repeat("a", 73))
			Expect(err).To(MatchError(credential.ErrPasswordTooLong))
		})
	})

	Describe("Compare", func() {
		var hash string

		BeforeEach(func() {
			var err error
			hash, err = hasher.Hash("user1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should report a mismatch", func() {
			Expect(hasher.Compare(hash, "user3")).To(MatchError(credential.ErrPasswordMismatch))
		})

		It("should fail on a malformed hash", func() {
			err := hasher.Compare("not-a-hash", "user1")
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(credential.ErrPasswordMismatch))
		})
	})
})
