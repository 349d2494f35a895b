package store_test

import (
	"context"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"cluey.app/bridge/internal/model"
	"cluey.app/bridge/internal/store"
)

var _ = Describe("MessageStore", func() {
	var (
		ctx      context.Context
		mr       *miniredis.Miniredis
		client   *redis.Client
		messages store.MessageStore
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())

		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		messages = store.NewStores(client).Messages()
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
		mr.Close()
	})

	It("returns an empty slice for an alert with no history", func() {
		records, err := messages.List(ctx, "empty")
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	It("lists exactly the appended records in call order", func() {
		for i := 0; i < 5; i++ {
			Expect(messages.Append(ctx, "A1", model.MessageRecord{
				ID:        fmt.Sprintf("in-%d", i),
				Direction: model.DirectionInbound,
				Text:      fmt.Sprintf("message %d", i),
				Timestamp: int64(1000 + i),
			})).To(Succeed())
		}

		records, err := messages.List(ctx, "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(5))
		for i, record := range records {
			Expect(record.ID).To(Equal(fmt.Sprintf("in-%d", i)))
			Expect(record.Text).To(Equal(fmt.Sprintf("message %d", i)))
		}
	})

	It("returns identical sequences on repeated list calls", func() {
		Expect(messages.Append(ctx, "A1", model.MessageRecord{ID: "sys-1", Direction: model.DirectionSystem, Text: "started"})).To(Succeed())
		Expect(messages.Append(ctx, "A1", model.MessageRecord{ID: "out-1", Direction: model.DirectionOutbound, Text: "hello"})).To(Succeed())

		first, err := messages.List(ctx, "A1")
		Expect(err).NotTo(HaveOccurred())
		second, err := messages.List(ctx, "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("does not deduplicate records by id", func() {
		record := model.MessageRecord{ID: "dup", Direction: model.DirectionInbound, Text: "hi"}
		Expect(messages.Append(ctx, "A1", record)).To(Succeed())
		Expect(messages.Append(ctx, "A1", record)).To(Succeed())

		records, err := messages.List(ctx, "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
	})

	It("keeps logs isolated per alert", func() {
		Expect(messages.Append(ctx, "A1", model.MessageRecord{ID: "a", Direction: model.DirectionInbound, Text: "for A1"})).To(Succeed())
		Expect(messages.Append(ctx, "B2", model.MessageRecord{ID: "b", Direction: model.DirectionInbound, Text: "for B2"})).To(Succeed())

		records, err := messages.List(ctx, "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Text).To(Equal("for A1"))
	})

	It("fails with a wrapped error when the store is down", func() {
		mr.Close()

		err := messages.Append(ctx, "A1", model.MessageRecord{ID: "x", Direction: model.DirectionInbound})
		Expect(err).To(HaveOccurred())
	})
})
