package cloud

import "context"

// InstanceManager defines the interface for instance lifecycle operations.
type InstanceManager interface {
	// RunInstance launches a single instance from an image.
	RunInstance(ctx context.Context, opts RunInstanceOpts) (*Instance, error)
	// GetInstance returns one instance by id, failing with the provider's
	// not-found condition when it does not exist.
	GetInstance(ctx context.Context, instanceID string) (*Instance, error)
	StopInstance(ctx context.Context, instanceID string) (*Instance, error)
	TerminateInstance(ctx context.Context, instanceID string) error
	// GetInstanceAttribute fetches a single named attribute of an instance,
	// such as its user data or kernel id.
	GetInstanceAttribute(ctx context.Context, instanceID, attribute string) (string, error)
	// GetConsoleOutput returns the instance's decoded console output.
	GetConsoleOutput(ctx context.Context, instanceID string) (string, error)
}

// VolumeManager defines the interface for volume lifecycle operations.
type VolumeManager interface {
	CreateVolume(ctx context.Context, opts CreateVolumeOpts) (*Volume, error)
	GetVolume(ctx context.Context, volumeID string) (*Volume, error)
	// GetVolumes lists volumes narrowed to those carrying the given tag.
	// An empty tagValue matches any volume carrying tagKey regardless of
	// its value; an empty tagKey lists everything.
	GetVolumes(ctx context.Context, tagKey, tagValue string) ([]*Volume, error)
	// DeleteVolume deletes the volume. Deleting a volume the provider
	// reports as already gone is a success, not an error.
	DeleteVolume(ctx context.Context, volumeID string) error
	AttachVolume(ctx context.Context, volumeID, instanceID, device string) error
	DetachVolume(ctx context.Context, volumeID, instanceID string, force bool) error
}

// SnapshotManager defines the interface for snapshot lifecycle operations.
type SnapshotManager interface {
	// CreateSnapshot snapshots a volume and tags the result with name and
	// the process-wide default tags.
	CreateSnapshot(ctx context.Context, volumeID, name, description string) (*Snapshot, error)
	GetSnapshot(ctx context.Context, snapshotID string) (*Snapshot, error)
	GetSnapshots(ctx context.Context, snapshotIDs ...string) ([]*Snapshot, error)
	DeleteSnapshot(ctx context.Context, snapshotID string) error
}

// ImageManager defines the interface for image lifecycle operations.
type ImageManager interface {
	// RegisterImage registers an image from a block device mapping and
	// returns the new image id.
	RegisterImage(ctx context.Context, opts RegisterImageOpts) (string, error)
	// CreateImage creates an image from an instance and returns the new
	// image id.
	CreateImage(ctx context.Context, opts CreateImageOpts) (string, error)
	GetImage(ctx context.Context, imageID string) (*Image, error)
	GetImages(ctx context.Context, filter ImageFilter) ([]*Image, error)
}

// SecurityGroupManager defines the interface for security group operations.
type SecurityGroupManager interface {
	CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (*SecurityGroup, error)
	GetSecurityGroup(ctx context.Context, groupID string) (*SecurityGroup, error)
	AddIngressRule(ctx context.Context, groupID string, rule IngressRule) error
	DeleteSecurityGroup(ctx context.Context, groupID string) error
}

// NetworkReader defines read-only lookups of the surrounding network and
// account resources.
type NetworkReader interface {
	GetSubnet(ctx context.Context, subnetID string) (*Subnet, error)
	GetDefaultVPC(ctx context.Context) (*VPC, error)
	GetKeyPair(ctx context.Context, name string) (*KeyPair, error)
	GetRegions(ctx context.Context) ([]string, error)
}

// Tagger defines tag creation on arbitrary resource ids. Implementations
// merge the caller's name/description over the process-wide default tag
// set; explicit tags win on key collision.
type Tagger interface {
	CreateTags(ctx context.Context, resourceID, name, description string) error
}

// ResourceManager combines every operation the encryption workflow may
// need against one provider region.
type ResourceManager interface {
	InstanceManager
	VolumeManager
	SnapshotManager
	ImageManager
	SecurityGroupManager
	NetworkReader
	Tagger
}
