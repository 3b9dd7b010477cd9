package dor

import "encoding/xml"

// FileSignature holds the size and checksums of a file.
type FileSignature struct {
	Size   int64  `xml:"size,attr"`
	MD5    string `xml:"md5,attr,omitempty"`
	SHA1   string `xml:"sha1,attr,omitempty"`
	SHA256 string `xml:"sha256,attr,omitempty"`
}

// SignatureCatalog lists every file ever preserved for an object.
// VersionID is 0 for an object that was never preserved.
type SignatureCatalog struct {
	XMLName         xml.Name                `xml:"signatureCatalog"`
	ObjectID        string                  `xml:"objectId,attr"`
	VersionID       int                     `xml:"versionId,attr"`
	CatalogDatetime string                  `xml:"catalogDatetime,attr,omitempty"`
	FileCount       int                     `xml:"fileCount,attr"`
	ByteCount       int64                   `xml:"byteCount,attr"`
	BlockCount      int64                   `xml:"blockCount,attr"`
	Entries         []SignatureCatalogEntry `xml:"entry"`
}

// SignatureCatalogEntry locates one preserved file.
type SignatureCatalogEntry struct {
	OriginalVersion int           `xml:"originalVersion,attr"`
	GroupID         string        `xml:"groupId,attr"`
	StoragePath     string        `xml:"storagePath,attr"`
	Signature       FileSignature `xml:"fileSignature"`
}

func emptySignatureCatalog(objectID string) *SignatureCatalog {
	return &SignatureCatalog{ObjectID: objectID}
}

// Empty reports whether the catalog lists no files.
func (c *SignatureCatalog) Empty() bool {
	return len(c.Entries) == 0
}

// FileInventoryDifference is the cm-inv-diff manifest comparing the preserved
// content with a proposed contentMetadata.
type FileInventoryDifference struct {
	XMLName         xml.Name              `xml:"fileInventoryDifference"`
	ObjectID        string                `xml:"objectId,attr"`
	DifferenceCount int                   `xml:"differenceCount,attr"`
	Basis           string                `xml:"basis,attr"`
	Other           string                `xml:"other,attr"`
	ReportDatetime  string                `xml:"reportDatetime,attr"`
	Groups          []FileGroupDifference `xml:"fileGroupDifference"`
}

// Group returns the difference for groupID, or nil.
func (d *FileInventoryDifference) Group(groupID string) *FileGroupDifference {
	for i := range d.Groups {
		if d.Groups[i].GroupID == groupID {
			return &d.Groups[i]
		}
	}
	return nil
}

// FileGroupDifference tallies the changes within one file group, e.g. "content".
type FileGroupDifference struct {
	GroupID         string       `xml:"groupId,attr"`
	DifferenceCount int          `xml:"differenceCount,attr"`
	Identical       int          `xml:"identical,attr"`
	CopyAdded       int          `xml:"copyadded,attr"`
	CopyDeleted     int          `xml:"copydeleted,attr"`
	Renamed         int          `xml:"renamed,attr"`
	Modified        int          `xml:"modified,attr"`
	Added           int          `xml:"added,attr"`
	Deleted         int          `xml:"deleted,attr"`
	Subsets         []FileSubset `xml:"subset"`
}

// Subset returns the files with the given change type ("added", "modified", ...), or nil.
func (g *FileGroupDifference) Subset(change string) *FileSubset {
	for i := range g.Subsets {
		if g.Subsets[i].Change == change {
			return &g.Subsets[i]
		}
	}
	return nil
}

// FileSubset lists the files with one kind of change.
type FileSubset struct {
	Change string                   `xml:"change,attr"`
	Count  int                      `xml:"count,attr"`
	Files  []FileInstanceDifference `xml:"file"`
}

// FileInstanceDifference describes a single changed file.
type FileInstanceDifference struct {
	Change     string          `xml:"change,attr"`
	BasisPath  string          `xml:"basisPath,attr"`
	OtherPath  string          `xml:"otherPath,attr"`
	Signatures []FileSignature `xml:"fileSignature"`
}
