package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerProvider --dir ../usecase --output usecase --outpkg usecasemock --filename player_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/draftlog --output domain/draftlog --outpkg draftlogmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Catalog --dir ../domain/player --output domain/player --outpkg playermock --filename catalog_mock.go
