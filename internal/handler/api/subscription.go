package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func ToggleSubscriptionHandler(svc port.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		res, err := svc.ToggleSubscription(r.Context(), channel, user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not toggle subscription")
			return
		}

		if !res.Added {
			RespondOK(w, http.StatusOK, nil, "unsubscribed")
			logger.Infof(r.Context(), "✅  Unsubscribed from channel #%s", channel)
			return
		}
		RespondOK(w, http.StatusCreated, res.Record, "subscribed to the channel")
		logger.Infof(r.Context(), "✅  Subscribed to channel #%s", channel)
	}
}

func ChannelSubscribersHandler(svc port.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel, ok := pathID(w, r)
		if !ok {
			return
		}

		ids, err := svc.ChannelSubscribers(r.Context(), channel)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not fetch subscribers")
			return
		}

		RespondOK(w, http.StatusOK, ids, "subscribed users fetched successfully")
	}
}

func SubscribedChannelsHandler(svc port.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscriber, ok := pathID(w, r)
		if !ok {
			return
		}

		subs, err := svc.SubscribedChannels(r.Context(), subscriber)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not fetch subscribed channels")
			return
		}

		RespondOK(w, http.StatusOK, subs, "subscribed channels fetched successfully")
	}
}
