package cloud

// Instance describes a compute instance.
type Instance struct {
	ID               string
	State            string
	AvailabilityZone string
	SubnetID         string
	VPCID            string
	RootDeviceName   string
	// BlockDevices maps device names to attached volume IDs.
	BlockDevices map[string]string
	Tags         map[string]string
}

// Volume describes a block storage volume.
type Volume struct {
	ID               string
	State            string
	AvailabilityZone string
	SnapshotID       string
	Size             int32
	Tags             map[string]string
}

// Snapshot describes a point-in-time copy of a volume.
type Snapshot struct {
	ID          string
	VolumeID    string
	State       string
	Progress    string
	Description string
	Tags        map[string]string
}

// Image describes a registered machine image.
type Image struct {
	ID             string
	Name           string
	Description    string
	State          string
	RootDeviceName string
	BlockDevices   []BlockDevice
	Tags           map[string]string
}

// BlockDevice describes one entry of a device mapping, either on an
// image registration request or on a registered image.
type BlockDevice struct {
	DeviceName          string
	SnapshotID          string
	VolumeSize          int32
	VolumeType          string
	DeleteOnTermination bool
}

// SecurityGroup describes a firewall group.
type SecurityGroup struct {
	ID    string
	Name  string
	VPCID string
}

// IngressRule describes one inbound rule added to a security group.
type IngressRule struct {
	Protocol string
	FromPort int32
	ToPort   int32
	CIDR     string
}

// Subnet describes a network subnet.
type Subnet struct {
	ID               string
	VPCID            string
	AvailabilityZone string
	CIDR             string
}

// VPC describes a virtual network.
type VPC struct {
	ID        string
	IsDefault bool
}

// KeyPair describes a named SSH key pair held by the provider.
type KeyPair struct {
	Name        string
	Fingerprint string
}

// RunInstanceOpts holds the parameters for launching an instance.
type RunInstanceOpts struct {
	ImageID          string
	InstanceType     string
	SecurityGroupIDs []string
	Placement        string
	SubnetID         string
	// UserData is the raw bootstrap payload handed to the instance.
	UserData        []byte
	EBSOptimized    bool
	InstanceProfile string
	BlockDevices    []BlockDevice
}

// CreateVolumeOpts holds the parameters for creating a volume.
type CreateVolumeOpts struct {
	Size             int32
	AvailabilityZone string
	SnapshotID       string
	VolumeType       string
	Encrypted        bool
}

// RegisterImageOpts holds the parameters for registering an image from a
// device mapping.
type RegisterImageOpts struct {
	Name         string
	Description  string
	KernelID     string
	BlockDevices []BlockDevice
}

// CreateImageOpts holds the parameters for creating an image from a
// running or stopped instance.
type CreateImageOpts struct {
	InstanceID   string
	Name         string
	Description  string
	NoReboot     bool
	BlockDevices []BlockDevice
}

// ImageFilter narrows an image listing. Filters uses the provider's
// filter names verbatim; Owners restricts results to the given account
// IDs or aliases.
type ImageFilter struct {
	Filters map[string]string
	Owners  []string
}
