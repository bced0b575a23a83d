// Package jphclient builds a jph.Client from a jph.Config.
//
// It normalizes the endpoint and layers the retryablehttp transport and the
// resource clients on top of the interfaces defined in the jph package.
//
//	cli, err := jphclient.New(ctx, &jph.Config{APIEndpoint: "jsonplaceholder.typicode.com"})
//	if err != nil { log.Fatal(err) }
//	users, err := cli.Users().List(ctx)
package jphclient
