package response

import "salon-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	Account     *queries.AccountView `json:"account"`
}
