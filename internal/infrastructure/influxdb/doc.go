// Package influxdb publishes air-data points to InfluxDB.
//
// It wraps the official influxdb-client-go v2 library, used in its
// InfluxDB 1.x compatibility mode: authentication is username:password
// and the bucket is the database name.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:      "http://localhost:8086",
//	    Username: "writer",
//	    Password: "secret",
//	    Database: "airquality",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.PublishRecords(ctx, "awair", records)
//
// # Concurrency
//
// PublishRecords fans records out to concurrent writes bounded to 10 in
// flight. After the first failure no further records are dispatched;
// in-flight writes run to completion. The call succeeds only when every
// write succeeded.
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
package influxdb
