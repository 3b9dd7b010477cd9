// Package dor provides a client for the dor-services-app REST API.
//
// dor-services-app manages digital objects in the Stanford Digital
// Repository. This package translates method calls into requests against the
// versioned API and translates responses into typed results or typed errors.
//
// # Architecture
//
//   - Client: root factory holding the configuration and the shared Connection
//   - Connection: pooled HTTP client bound to a base URL and credentials
//   - Resource clients: Objects, Object, Files, Workspace, Metadata, SDR,
//     ReleaseTags, AdministrativeTags, Collections, Members, ObjectVersion,
//     Embargo, Events and Accession, one per REST sub-path
//   - Errors: a single *Error type classified by Kind
//
// # Usage
//
//	client := dor.New(dor.Config{
//		URL:    "https://dor-services.example.com",
//		Token:  os.Getenv("DOR_TOKEN"),
//		Logger: zerolog.New(os.Stderr),
//	})
//
//	ctx := context.Background()
//	version, err := client.Object("druid:bc123df4567").SDR().CurrentVersion(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every operation issues exactly one request. Nothing is retried or cached.
//
// # Error Handling
//
// Non-2xx responses become an *Error whose message has the form
// "<reason>: <status> (<body>)", followed by " for <identifier>" when the
// call is scoped to an object:
//
//	switch dor.KindOf(err) {
//	case dor.KindNotFound:
//		// 404
//	case dor.KindConflict, dor.KindUnexpectedResponse:
//		// any other failure
//	case dor.KindMalformedResponse:
//		// body could not be parsed; the raw body is in (*Error).Body
//	}
//
// Some endpoints treat 404 as a valid absence instead: Files.Retrieve and
// the metadata getters return nil, Files.List returns an empty list and
// SDR.SignatureCatalog returns an empty catalog with version 0.
package dor
