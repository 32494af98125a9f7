package handler

import (
	"etsysync/internal/usecase"
)

var (
	storeHandler     *StoreHandler
	syncHandler      *SyncHandler
	listingHandler   *ListingHandler
	queueHandler     *QueueHandler
	analyticsHandler *AnalyticsHandler
)

func Setup(
	storeUseCase *usecase.StoreUseCase,
	syncUseCase *usecase.SyncUseCase,
	listingUseCase *usecase.ListingUseCase,
	queueUseCase *usecase.QueueUseCase,
	analyticsUseCase *usecase.AnalyticsUseCase,
) {
	storeHandler = NewStoreHandler(storeUseCase)
	syncHandler = NewSyncHandler(syncUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	queueHandler = NewQueueHandler(queueUseCase)
	analyticsHandler = NewAnalyticsHandler(analyticsUseCase)
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetSyncHandler() *SyncHandler {
	return syncHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetQueueHandler() *QueueHandler {
	return queueHandler
}

func GetAnalyticsHandler() *AnalyticsHandler {
	return analyticsHandler
}
