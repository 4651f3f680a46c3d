package http

func LoadRoutes(router *Router) {
	router.Get(
		"/{$}",
		StaticPageController,
	)

	router.Get(
		"/api/counter",
		CounterShowController,
	)

	router.Post(
		"/api/counter/increment",
		CounterIncrementController,
	)

	router.Get(
		"/api/counter/events",
		CounterStreamController,
	).Timeout(0)

	router.Fallback(func(request *Request) Response {
		return NotFoundResponse()
	})
}
