// Package s3 stores snapshot blobs in Amazon S3.
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("snapshots/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// Reads use ranged GETs, streaming writes go through the multipart
// uploader, and single-shot puts carry a CRC32C checksum. CommitStore
// layers a DynamoDB commit log over any blobstore.Store so that
// concurrent publishers cannot lose each other's snapshots.
package s3
